package i

// Logger is the logging surface the services depend on.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
	Debug(msg string)
}

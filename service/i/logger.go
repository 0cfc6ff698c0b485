package i

// Logger is the logging contract shared by services and adapters.
type Logger interface {
	Debug(string)
	Info(string)
	Warning(string)
	Error(string)
}

package services

type LogHandler interface {
	Debug(text string)
	Info(text string)
	Warn(text string)
	Error(text string, err error)
	WithRequestId(id string) LogHandler
}

package notify

// Logger интерфейс логгера для клиента уведомлений
type Logger interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}

package core

// Logger is the application-wide logging contract.
// args may carry any extra context; implementations know how to unpack
// an auth identity to tag reports with the acting user.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

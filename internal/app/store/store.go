package store

// Notification is a user-visible operation outcome, rendered by the next
// screen as a blocking dialog. Mutations produce one on both success and
// failure; fetch-all never does.
type Notification struct {
	Kind  string // "success" or "error"
	Title string
	Text  string
}

const (
	NotifySuccess = "success"
	NotifyError   = "error"

	titleSuccess = "Operation Successful"
	titleFailure = "Operation Failed"
)

// Notifier receives operation outcome notifications. The console session
// implements it and replays pending notifications on the next render.
type Notifier interface {
	Notify(n Notification)
}

func notifySuccess(n Notifier, text string) {
	if n != nil {
		n.Notify(Notification{Kind: NotifySuccess, Title: titleSuccess, Text: text})
	}
}

func notifyFailure(n Notifier, text string) {
	if n != nil {
		n.Notify(Notification{Kind: NotifyError, Title: titleFailure, Text: text})
	}
}

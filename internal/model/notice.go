package model

type NoticeCategory string

const (
	NoticeSuccess NoticeCategory = "success"
	NoticeDanger  NoticeCategory = "danger"
)

// Notice одноразовое уведомление, показывается один раз после действия
type Notice struct {
	Category NoticeCategory
	Message  string
}

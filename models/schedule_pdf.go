package models

type ScheduleEntry struct {
	Title        string
	Date         string
	Time         string
	Level        string
	Participants string
	Creator      string
	Description  string
}

type SchedulePDFData struct {
	GeneratedAt string
	Count       int
	Entries     []ScheduleEntry
}

package models

import "strings"

const (
	LevelTeam       = "Team"
	LevelDepartment = "Department"
	LevelCompany    = "Company"
)

// Meeting carries participants as a list; the stores keep them as a single
// comma-joined string and convert at the boundary.
type Meeting struct {
	ID           int64    `json:"id" bson:"_id"`
	Title        string   `json:"title" bson:"title"`
	Date         string   `json:"date" bson:"date"`
	Time         string   `json:"time" bson:"time"`
	Level        string   `json:"level" bson:"level"`
	Participants []string `json:"participants" bson:"-"`
	Description  string   `json:"description" bson:"description"`
	CreatorID    int64    `json:"creator_id" bson:"creator_id"`
}

func JoinParticipants(list []string) string {
	return strings.Join(list, ",")
}

// SplitParticipants maps the stored empty string to an empty list, not to
// a one-element list of "".
func SplitParticipants(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

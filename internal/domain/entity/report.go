package entity

// StandupReport is one user's completed three-question standup for one channel.
// It is created only when the full dialog completes; an abandoned dialog never
// produces one. A later submission by the same user in the same channel
// replaces this one until the channel's reports are cleared.
type StandupReport struct {
	Channel     string `json:"channel"`
	User        string `json:"user"`
	UserName    string `json:"userName"`
	SubmittedAt string `json:"submittedAt"`
	Yesterday   string `json:"yesterday"`
	Today       string `json:"today"`
	Obstacles   string `json:"obstacles"`
}

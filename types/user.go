package types

type UserRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type UserProfile struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Followers []UserRef `json:"followers"`
	Following []UserRef `json:"following"`
}

type ProfileResponse struct {
	Result bool         `json:"result"`
	User   *UserProfile `json:"user"`
}

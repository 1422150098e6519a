package model

// SearchResults always carries all three lists, empty slices included,
// so clients can rely on the keys being present.
type SearchResults struct {
	Tasks    []*Task    `json:"tasks"`
	Projects []*Project `json:"projects"`
	Users    []*User    `json:"users"`
}

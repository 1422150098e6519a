package model

type Team struct {
	ID                   int    `json:"id"`
	TeamName             string `json:"teamName"`
	ProductOwnerUserID   *int   `json:"productOwnerUserId,omitempty"`
	ProjectManagerUserID *int   `json:"projectManagerUserId,omitempty"`

	// Resolved at read time from the referenced users. Nil when the
	// reference is absent or dangling.
	ProductOwnerUsername   *string `json:"productOwnerUsername,omitempty"`
	ProjectManagerUsername *string `json:"projectManagerUsername,omitempty"`
}

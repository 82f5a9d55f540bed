package travis

// Repo is the build summary of a repository.
type Repo struct {
	Slug           string `json:"slug"`
	LastBuildID    int64  `json:"last_build_id"`
	LastBuildState string `json:"last_build_state"`
}

// Build is one entry of the build history, newest first.
type Build struct {
	ID        int64  `json:"id"`
	CommitID  int64  `json:"commit_id"`
	EventType string `json:"event_type"`
	State     string `json:"state"`
}

// Commit joins a build's commit id to its SHA.
type Commit struct {
	ID  int64  `json:"id"`
	SHA string `json:"sha"`
}

// BuildList is the build history response with its accompanying commits.
type BuildList struct {
	Builds  []Build  `json:"builds"`
	Commits []Commit `json:"commits"`
}

// repoFields mirrors the summary payload; pointers tell absent fields apart
// from zero values.
type repoFields struct {
	Slug           string  `json:"slug"`
	LastBuildID    *int64  `json:"last_build_id"`
	LastBuildState *string `json:"last_build_state"`
}

type repoPayload struct {
	Repo *repoFields `json:"repo"`
	repoFields
}

type buildPayload struct {
	ID        int64   `json:"id"`
	CommitID  *int64  `json:"commit_id"`
	EventType string  `json:"event_type"`
	State     *string `json:"state"`
	Status    *string `json:"status"`
}

type buildListPayload struct {
	Builds  *[]buildPayload `json:"builds"`
	Commits *[]Commit       `json:"commits"`
}

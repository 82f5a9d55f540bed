package resolver

import "badgeofshame/internal/travis"

// FindFailingCommit walks builds newest first and returns the commit id of
// the oldest push build after the most recent passing build. Builds that are
// not push-triggered never become the candidate, and scanning stops at the
// first "passed" build.
func FindFailingCommit(builds []travis.Build) (int64, bool) {
	var (
		commitID int64
		found    bool
	)

	for _, b := range builds {
		if b.State == "passed" {
			break
		}

		if b.EventType == "push" && b.CommitID != 0 {
			commitID = b.CommitID
			found = true
		}
	}

	return commitID, found
}

// ResolveSHA finds the SHA of commit id among commits.
func ResolveSHA(commits []travis.Commit, id int64) (string, bool) {
	for _, c := range commits {
		if c.ID == id {
			return c.SHA, c.SHA != ""
		}
	}

	return "", false
}

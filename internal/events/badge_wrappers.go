package events

import "badgeofshame/internal/models"

// BadgeResolved records the outcome of one badge request.
func (e *Emitter) BadgeResolved(slug, outcome string, buildID int64, login, diagnostic string) {
	if e == nil {
		return
	}

	props := map[string]any{
		"outcome": outcome,
		"buildID": buildID,
	}
	if login != "" {
		props["login"] = login
	}
	if diagnostic != "" {
		props["diagnostic"] = diagnostic
	}

	e.Emit(models.Event{
		Action: "badge.resolved",

		ActorRole: ActorVisitor,

		TargetType: TargetRepository,
		TargetID:   slug,

		Props: props,
	})
}

// CacheEntryPurged records an operator removing a cached badge.
func (e *Emitter) CacheEntryPurged(operator, slug string) {
	if e == nil {
		return
	}

	e.Emit(models.Event{
		Action: "badge.cache.purged",

		ActorRole: ActorOperator,
		ActorID:   operator,

		TargetType: TargetRepository,
		TargetID:   slug,
	})
}

package events

import "badgeofshame/internal/models"

func (e *Emitter) OperatorLogin(username string) {
	if e == nil {
		return
	}

	evt := models.Event{
		Action: "operator.login",

		ActorRole: ActorOperator,
		ActorID:   username,

		TargetType: TargetOperator,
		TargetID:   username,
	}

	e.Emit(evt)
}

package boardhttp

import (
	"fmt"
	"net/http"

	"github.com/programme-lv/leaderboard/board"
	"github.com/programme-lv/leaderboard/srvcerror"
)

const ErrCodeDataUnavailable = "data_unavailable"

func newErrDataUnavailable(cause error) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeDataUnavailable,
		board.ErrorMessage,
	).SetHttpStatusCode(http.StatusBadGateway).SetDebug(cause)
}

const ErrCodeParticipantNotFound = "participant_not_found"

func newErrParticipantNotFound(id int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeParticipantNotFound,
		fmt.Sprintf("participant %d not found", id),
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeInvalidParticipantId = "invalid_participant_id"

func newErrInvalidParticipantId(raw string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidParticipantId,
		fmt.Sprintf("invalid participant id %q", raw),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidAnchor = "invalid_anchor"

func newErrInvalidAnchor(param string, raw string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidAnchor,
		fmt.Sprintf("invalid %s %q", param, raw),
	).SetHttpStatusCode(http.StatusBadRequest)
}

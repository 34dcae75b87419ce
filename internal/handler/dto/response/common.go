package response

import (
	"log/slog"

	"decor-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MessageResponse struct {
	Message string `json:"message"`
}

// InsertResponse reports a created record; InsertedID is null when nothing was inserted.
type InsertResponse struct {
	Acknowledged bool       `json:"acknowledged"`
	InsertedID   *uuid.UUID `json:"insertedId"`
	Message      string     `json:"message,omitempty"`
}

func Inserted(id uuid.UUID) *InsertResponse {
	return &InsertResponse{Acknowledged: true, InsertedID: &id}
}

type UpdateResponse struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

func FromUpdateResult(r *shared.UpdateResult) *UpdateResponse {
	return &UpdateResponse{
		Acknowledged:  true,
		MatchedCount:  r.MatchedCount,
		ModifiedCount: r.ModifiedCount,
	}
}

type DeleteResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// copyAll maps a slice of read views onto response DTOs with matching field names.
func copyAll[S any, D any](src []*S) []*D {
	out := make([]*D, 0, len(src))
	for _, s := range src {
		d := new(D)
		if err := copier.Copy(d, s); err != nil {
			slog.Error("response mapping failed", "error", err.Error())
			continue
		}
		out = append(out, d)
	}
	return out
}

func copyOne[S any, D any](src *S) *D {
	d := new(D)
	if err := copier.Copy(d, src); err != nil {
		slog.Error("response mapping failed", "error", err.Error())
	}
	return d
}

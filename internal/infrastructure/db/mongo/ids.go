package mongo

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nexospark/website-api/internal/core/domain"
)

// parseID converts a path identifier into an ObjectID. A syntactically
// invalid identifier cannot match any document, so it reports the same
// not-found error the caller would get from a well-formed miss.
func parseID(id, what string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.NotFound("no " + what + " found with that ID")
	}
	return oid, nil
}

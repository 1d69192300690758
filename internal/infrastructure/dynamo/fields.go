package dynamo

// DynamoDB attribute and index names shared across repos.
const (
	fieldUserID     = "user_id"
	fieldEmail      = "email"
	fieldNoteID     = "note_id"
	fieldFavoriteID = "favorite_id"
	fieldCreatedAt  = "created_at"
	fieldUpdatedAt  = "updated_at"

	indexEmail  = "email-index"
	indexUserID = "user_id-created_at-index"
)

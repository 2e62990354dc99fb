package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// AppSetting holds the schema definition for the AppSetting entity.
// Flat key-value registry. Structured key prefixes (pipeline., pricing.,
// cache., agent., git.user.) partition the namespace; values are strings
// parsed by the consumer with a per-key default on failure.
type AppSetting struct {
	ent.Schema
}

// Fields of the AppSetting.
func (AppSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("key").
			Unique().
			Immutable(),
		field.String("value"),
	}
}

package character

// Record is one raw character definition as delivered by a record source.
// Fields holds the decoded key/value data; Source tags the record for error
// messages (a file name or positional identifier). Err is set when the
// source could not decode the record at all, in which case Fields is nil.
type Record struct {
	Source string
	Fields map[string]any
	Err    error
}

// Raw field keys recognized in character records.
const (
	fieldID            = "id"
	fieldName          = "name"
	fieldAge           = "age"
	fieldGender        = "gender"
	fieldBio           = "bio"
	fieldIsPlayer      = "is_player"
	fieldTraits        = "traits"
	fieldSkills        = "skills"
	fieldAssets        = "assets"
	fieldRelationships = "relationships"

	fieldSpouseID    = "spouse_id"
	fieldParentIDs   = "parent_ids"
	fieldChildrenIDs = "children_ids"
	fieldSiblingIDs  = "sibling_ids"
)

// stringField extracts a string value for key. ok is false when the key is
// absent or holds a non-string value.
func (r Record) stringField(key string) (string, bool) {
	raw, present := r.Fields[key]
	if !present {
		return "", false
	}
	value, ok := raw.(string)
	return value, ok
}

// intField extracts an integer value for key. YAML decoders deliver whole
// numbers as int, int64, uint64, or float64 depending on magnitude.
func (r Record) intField(key string) (int, bool) {
	raw, present := r.Fields[key]
	if !present {
		return 0, false
	}
	switch value := raw.(type) {
	case int:
		return value, true
	case int64:
		return int(value), true
	case uint64:
		return int(value), true
	case float64:
		if value != float64(int(value)) {
			return 0, false
		}
		return int(value), true
	default:
		return 0, false
	}
}

// boolField extracts a boolean value for key, defaulting to false when the
// key is absent or holds a non-boolean value.
func (r Record) boolField(key string) bool {
	raw, present := r.Fields[key]
	if !present {
		return false
	}
	value, ok := raw.(bool)
	return ok && value
}

// stringListField extracts an ordered string sequence for key. Absent keys
// yield nil; non-string elements are dropped.
func (r Record) stringListField(key string) []string {
	raw, present := r.Fields[key]
	if !present {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	var values []string
	for _, item := range items {
		if value, ok := item.(string); ok {
			values = append(values, value)
		}
	}
	return values
}

// mappingField extracts a nested mapping for key, such as the relationships
// block. Absent or malformed values yield nil.
func (r Record) mappingField(key string) map[string]any {
	raw, present := r.Fields[key]
	if !present {
		return nil
	}
	value, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	return value
}

// relationshipIDs decodes the nested relationships mapping into raw
// identifier slots. Missing keys default to empty values.
func (r Record) relationshipIDs() RelationshipIDs {
	mapping := r.mappingField(fieldRelationships)
	if mapping == nil {
		return RelationshipIDs{}
	}
	nested := Record{Source: r.Source, Fields: mapping}
	spouseID, _ := nested.stringField(fieldSpouseID)
	return RelationshipIDs{
		SpouseID:    spouseID,
		ParentIDs:   nested.stringListField(fieldParentIDs),
		ChildrenIDs: nested.stringListField(fieldChildrenIDs),
		SiblingIDs:  nested.stringListField(fieldSiblingIDs),
	}
}

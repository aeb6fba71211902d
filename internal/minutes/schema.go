package minutes

import (
	"encoding/json"
	"sync"

	"github.com/invopop/jsonschema"
)

var (
	schemaOnce sync.Once
	schemaJSON json.RawMessage
)

// ResponseSchema returns the JSON schema for Record, reflected once from
// the struct tags. It is sent to the extraction model as the structured
// output schema, keeping prompt and Go type in lockstep.
func ResponseSchema() json.RawMessage {
	schemaOnce.Do(func() {
		r := &jsonschema.Reflector{
			DoNotReference:            true,
			ExpandedStruct:            true,
			AllowAdditionalProperties: false,
		}
		s := r.Reflect(&Record{})
		s.Version = "" // the model endpoint rejects $schema

		// original_text is filled in locally from the segment, so the
		// model is never asked for it.
		s.Properties.Delete("original_text")
		required := s.Required[:0]
		for _, name := range s.Required {
			if name != "original_text" {
				required = append(required, name)
			}
		}
		s.Required = required

		data, err := json.Marshal(s)
		if err != nil {
			// Reflection of a static struct cannot fail at runtime;
			// a marshal error here is a programming bug.
			panic(err)
		}
		schemaJSON = data
	})
	return schemaJSON
}

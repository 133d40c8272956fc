package vtree

import (
	"github.com/mitchellh/mapstructure"

	"github.com/loom-ui/loom/internal/errors"
)

// Props holds named values: construction property bags, component
// placeholder properties, and element DOM properties.
type Props map[string]any

// ChildrenProp is the reserved props key under which a component
// placeholder stores its child slot list.
const ChildrenProp = "children"

// DecodeProps decodes a properties bag into a typed struct. Slot lists
// (the reserved children key and outlet slots) are structural and are
// skipped. Field mapping follows mapstructure tags.
func DecodeProps(bag Props, out any) error {
	plain := make(map[string]any, len(bag))
	for k, v := range bag {
		if _, isSlot := v.([]NodeID); isSlot {
			continue
		}
		plain[k] = v
	}
	if err := mapstructure.Decode(plain, out); err != nil {
		return errors.Newf(errors.CategoryUsage, "decoding props: %v", err).Wrap(err)
	}
	return nil
}

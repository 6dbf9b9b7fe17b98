package catalog

import "fmt"

// MaxTags is the most tags a product or group may carry.
const MaxTags = 5

// ProductTags is the closed set of allowed tag values.
var ProductTags = []string{
	"Watches",
	"Perfume",
	"Belt & Wallet",
	"Sunglasses",
	"Electronic Items", // earbuds, smart watch etc.
	"Shoes",
	"Formal Shoes",
	"Flip Flop",
}

func IsAllowedTag(tag string) bool {
	for _, t := range ProductTags {
		if t == tag {
			return true
		}
	}
	return false
}

// ValidateTags rejects the whole set if it is too large or if any member is
// outside the enumeration.
func ValidateTags(tags []string) error {
	if len(tags) > MaxTags {
		return fmt.Errorf("tags exceeds the limit of %d", MaxTags)
	}
	for _, tag := range tags {
		if !IsAllowedTag(tag) {
			return fmt.Errorf("invalid tag %q", tag)
		}
	}
	return nil
}

package domain

import "time"

// Reaction target kinds. The target is a weak reference: a kind
// discriminator plus an id, with no foreign key across the polymorphic
// boundary. Deleting the target leaves the reaction row behind, and
// readers must tolerate such orphans.
const (
	TargetArticle = "article"
	TargetComment = "comment"
	TargetReview  = "review"
)

const (
	PolarityLike    = "like"
	PolarityDislike = "dislike"
)

// ValidTargetKind reports whether k names a reactable content type.
func ValidTargetKind(k string) bool {
	switch k {
	case TargetArticle, TargetComment, TargetReview:
		return true
	}
	return false
}

// ValidPolarity reports whether p is like or dislike.
func ValidPolarity(p string) bool {
	return p == PolarityLike || p == PolarityDislike
}

// Reaction is one user's polarity toward a content item. A user holds at
// most one row per (kind, target) at a time; reacting again overwrites
// the polarity.
type Reaction struct {
	ID         string    `json:"id"`
	UserID     string    `json:"-"`
	TargetKind string    `json:"targetKind"`
	TargetID   string    `json:"targetId"`
	Polarity   string    `json:"polarity"`
	CreatedAt  time.Time `json:"createdAt"`
}

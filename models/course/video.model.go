package course

import "gorm.io/gorm"

// Video represents one video inside a milestone. VideoID holds the
// platform identifier extracted from the submitted URL when possible,
// otherwise the raw submitted value.
type Video struct {
	gorm.Model
	MilestoneID uint   `json:"milestone_id" gorm:"index;not null"`
	Title       string `json:"title"`
	VideoID     string `json:"videoId"`
	Order       int    `json:"order" gorm:"column:display_order;default:0"` // position within the milestone
}

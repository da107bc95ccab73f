package scope

import "gorm.io/gorm"

// Oldest first, id as tiebreak for rows written in the same instant.
func OrderByCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("id ASC")
}

func OrderByRankAsc(db *gorm.DB) *gorm.DB {
	return db.Order("rank_no ASC")
}

func OrderByTrackAsc(db *gorm.DB) *gorm.DB {
	return db.Order("track_no ASC")
}

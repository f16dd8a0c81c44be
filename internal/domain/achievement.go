package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Badge names, in the order the rules are evaluated.
const (
	BadgeSleepyNovice  = "Sleepy novice"
	BadgeSleepyExpert  = "Sleepy expert"
	BadgeSleepMaster   = "Sleep master"
	BadgeDreamLord     = "Dream lord"
	BadgeEarlyBird     = "Early bird"
	BadgeNightOwl      = "Night owl"
	BadgePerfectSleep  = "Perfect sleep"
	BadgeStableRoutine = "Stable routine"
)

var badgeDescriptions = map[string]string{
	BadgeSleepyNovice:  "Logged sleep for 3 nights",
	BadgeSleepyExpert:  "Logged sleep for 7 nights",
	BadgeSleepMaster:   "Logged sleep for 30 nights",
	BadgeDreamLord:     "Logged sleep for 100 nights",
	BadgeEarlyBird:     "Went to bed before 22:00 for the last 5 nights",
	BadgeNightOwl:      "Went to bed at 00:30 or later for the last 5 nights",
	BadgePerfectSleep:  "Slept between 7 and 9 hours last night",
	BadgeStableRoutine: "Kept bedtime and wake time within 30 minutes for 5 nights",
}

// BadgeDescription returns the human description of a badge, or "" if unknown.
func BadgeDescription(name string) string {
	return badgeDescriptions[name]
}

// ShareText is the message a user posts to share a badge.
func ShareText(name string) string {
	return fmt.Sprintf("I earned a new achievement '%s' in the sleep tracking bot!", name)
}

// Achievement is a badge permanently granted to a user.
type Achievement struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_achievements_user_name,priority:1" json:"user_id"`
	Name      string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_achievements_user_name,priority:2" json:"name"`
	GrantedAt time.Time `gorm:"autoCreateTime" json:"granted_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// AchievementSet is the set of badge names a user already holds.
type AchievementSet map[string]struct{}

// NewAchievementSet builds a set from names.
func NewAchievementSet(names ...string) AchievementSet {
	set := make(AchievementSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func (s AchievementSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s AchievementSet) Add(name string) {
	s[name] = struct{}{}
}

// AchievementResponse describes a granted badge.
type AchievementResponse struct {
	Name        string    `json:"name" example:"Perfect sleep"`
	Description string    `json:"description" example:"Slept between 7 and 9 hours last night"`
	ShareText   string    `json:"share_text"`
	GrantedAt   time.Time `json:"granted_at"`
}

func (a *Achievement) ToResponse() AchievementResponse {
	return AchievementResponse{
		Name:        a.Name,
		Description: BadgeDescription(a.Name),
		ShareText:   ShareText(a.Name),
		GrantedAt:   a.GrantedAt,
	}
}

// AchievementListResponse lists a user's badges.
type AchievementListResponse struct {
	Data []AchievementResponse `json:"data"`
}

// EvaluateAchievementsResponse lists badges granted by an evaluation run.
type EvaluateAchievementsResponse struct {
	NewAchievements []string `json:"new_achievements"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// TeamMemberModel — roster tim; satu user hanya sekali per tim.
type TeamMemberModel struct {
	TeamMemberID       uuid.UUID `gorm:"column:team_member_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"team_member_id"`
	TeamMemberTeamID   uuid.UUID `gorm:"column:team_member_team_id;type:uuid;not null;uniqueIndex:idx_team_member_pair;index" json:"team_member_team_id"`
	TeamMemberUserID   uuid.UUID `gorm:"column:team_member_user_id;type:uuid;not null;uniqueIndex:idx_team_member_pair;index" json:"team_member_user_id"`
	TeamMemberJoinedAt time.Time `gorm:"column:team_member_joined_at;autoCreateTime" json:"team_member_joined_at"`
}

func (TeamMemberModel) TableName() string {
	return "team_members"
}

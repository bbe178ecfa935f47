package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/teams/model"
)

var ErrTeamNotFound = errors.New("tim tidak ditemukan")

// FindTeam ambil tim by id.
func FindTeam(db *gorm.DB, teamID uuid.UUID) (*model.TeamModel, error) {
	var team model.TeamModel
	if err := db.First(&team, "team_id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// IsTeamSupervisor cek apakah user adalah supervisor tim tersebut.
// Dipakai guard approve/revisi laporan (supervisor ownership).
func IsTeamSupervisor(db *gorm.DB, teamID, userID uuid.UUID) (bool, error) {
	team, err := FindTeam(db, teamID)
	if err != nil {
		return false, err
	}
	return team.TeamSupervisorID == userID, nil
}

// IsTeamLeader cek apakah user adalah ketua tim (guard program kerja).
func IsTeamLeader(db *gorm.DB, teamID, userID uuid.UUID) (bool, error) {
	team, err := FindTeam(db, teamID)
	if err != nil {
		return false, err
	}
	return team.TeamLeaderID == userID, nil
}

// IsTeamMember cek keanggotaan roster.
func IsTeamMember(db *gorm.DB, teamID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := db.Model(&model.TeamMemberModel{}).
		Where("team_member_team_id = ? AND team_member_user_id = ?", teamID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// RosterUserIDs ambil seluruh user id anggota tim, urut tanggal gabung.
func RosterUserIDs(db *gorm.DB, teamID uuid.UUID) ([]uuid.UUID, error) {
	var members []model.TeamMemberModel
	if err := db.
		Where("team_member_team_id = ?", teamID).
		Order("team_member_joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.TeamMemberUserID)
	}
	return ids, nil
}

// TeamIDForMember cari tim aktif yang memuat user (untuk /my-team dan check-in).
func TeamIDForMember(db *gorm.DB, userID uuid.UUID) (uuid.UUID, error) {
	var member model.TeamMemberModel
	if err := db.
		Where("team_member_user_id = ?", userID).
		Order("team_member_joined_at DESC").
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, ErrTeamNotFound
		}
		return uuid.Nil, err
	}
	return member.TeamMemberTeamID, nil
}

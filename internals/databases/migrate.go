package database

import (
	"log"

	activityModel "magangku_backend/internals/features/activities/model"
	attendanceModel "magangku_backend/internals/features/attendance/model"
	programModel "magangku_backend/internals/features/programs/model"
	registrationModel "magangku_backend/internals/features/registrations/model"
	reportModel "magangku_backend/internals/features/reports/model"
	taskModel "magangku_backend/internals/features/tasks/model"
	teamModel "magangku_backend/internals/features/teams/model"
	authModel "magangku_backend/internals/features/users/auth/model"
	userModel "magangku_backend/internals/features/users/user/model"
	workProgramModel "magangku_backend/internals/features/workprograms/model"
)

// Migrate menjalankan AutoMigrate untuk semua model.
// Unique index komposit (user+tanggal, team+minggu, dst) ikut dibuat di sini
// sebagai backstop invariant upsert.
func Migrate() {
	log.Println("🛠 AutoMigrate...")

	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&programModel.ProgramModel{},
		&registrationModel.RegistrationModel{},
		&teamModel.TeamModel{},
		&teamModel.TeamMemberModel{},
		&attendanceModel.AttendanceModel{},
		&taskModel.TaskModel{},
		&reportModel.WeeklyReportModel{},
		&workProgramModel.WorkProgramModel{},
		&activityModel.ActivityModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}

	log.Println("✅ AutoMigrate selesai.")
}

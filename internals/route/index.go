// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	authMiddleware "schoolku_backend/internals/middlewares/auth"

	classRoute "schoolku_backend/internals/features/school/classes/route"
	examRoute "schoolku_backend/internals/features/school/exams/route"
	gradeRoute "schoolku_backend/internals/features/school/grades/route"
	scheduleRoute "schoolku_backend/internals/features/school/schedules/route"
	schoolRoute "schoolku_backend/internals/features/school/schools/route"
	subjectRoute "schoolku_backend/internals/features/school/subjects/route"
	authRoute "schoolku_backend/internals/features/users/auth/route"
	userRoute "schoolku_backend/internals/features/users/user/route"
)

/* =========================================================
   ROUTE INDEX

   /api/auth  → public (signup/login/bootstrap admin)
   /api/u     → semua role login (JWT)
   /api/a     → admin only (JWT + role guard)
   ========================================================= */

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// public
	authRoute.AuthRoutes(app, db)

	jwt := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	user := app.Group("/api/u", jwt)
	admin := app.Group("/api/a", jwt, authMiddleware.AdminOnly("panel admin"))

	// auth'd self
	authRoute.UserAuthRoutes(user, db)

	// users
	userRoute.AdminUserRoutes(admin, db)
	userRoute.UserLookupRoutes(user, db)

	// schools
	schoolRoute.AdminSchoolRoutes(admin, db)
	schoolRoute.UserSchoolRoutes(user, db)

	// classes
	classRoute.AdminClassRoomRoutes(admin, db)
	classRoute.UserClassRoomRoutes(user, db)

	// subjects
	subjectRoute.AdminSubjectRoutes(admin, db)
	subjectRoute.UserSubjectRoutes(user, db)

	// schedules
	scheduleRoute.AdminScheduleRoutes(admin, db)
	scheduleRoute.UserScheduleRoutes(user, db)

	// exams
	examRoute.UserExamRoutes(user, db)

	// grades
	gradeRoute.AdminGradeRoutes(admin, db)
	gradeRoute.UserGradeRoutes(user, db)
}

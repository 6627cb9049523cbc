// file: internals/features/school/classes/controller/class_room_controller_test.go
package controller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	m "schoolku_backend/internals/features/school/classes/model"
	gradeModel "schoolku_backend/internals/features/school/grades/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	helperAuth "schoolku_backend/internals/helpers/auth"
	"schoolku_backend/internals/constants"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&m.ClassRoomModel{},
		&subjectModel.SubjectModel{},
		&gradeModel.StudentGradeModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// newTestApp memasang controller di belakang middleware yang
// meng-inject identitas langsung ke Locals (tanpa JWT).
func newTestApp(db *gorm.DB, actorID, schoolID uuid.UUID, role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocUserID, actorID.String())
		c.Locals(helperAuth.LocUserRole, role)
		c.Locals(helperAuth.LocSchoolID, schoolID.String())
		return c.Next()
	})

	ctl := New(db, validator.New())
	app.Post("/classes", ctl.Create)
	app.Get("/classes/:id", ctl.GetByID)
	app.Post("/classes/:id/enroll", ctl.Enroll)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func TestCreateClassRoom_DuplicateNameConflicts(t *testing.T) {
	db := newTestDB(t)
	schoolID := uuid.New()
	app := newTestApp(db, uuid.New(), schoolID, constants.RoleAdmin)

	resp := doJSON(t, app, fiber.MethodPost, "/classes", `{"class_room_name":"Kelas 7A"}`)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("first create status = %d, want 201", resp.StatusCode)
	}

	resp = doJSON(t, app, fiber.MethodPost, "/classes", `{"class_room_name":"Kelas 7A"}`)
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("duplicate create status = %d, want 409", resp.StatusCode)
	}
}

func TestCreateClassRoom_SameNameOtherSchoolAllowed(t *testing.T) {
	db := newTestDB(t)
	appA := newTestApp(db, uuid.New(), uuid.New(), constants.RoleAdmin)
	appB := newTestApp(db, uuid.New(), uuid.New(), constants.RoleAdmin)

	if resp := doJSON(t, appA, fiber.MethodPost, "/classes", `{"class_room_name":"Kelas 7A"}`); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("school A create status = %d, want 201", resp.StatusCode)
	}
	if resp := doJSON(t, appB, fiber.MethodPost, "/classes", `{"class_room_name":"Kelas 7A"}`); resp.StatusCode != fiber.StatusCreated {
		t.Errorf("school B create status = %d, want 201 (nama unik hanya per sekolah)", resp.StatusCode)
	}
}

func TestGetClassRoom_CrossTenantIsNotFound(t *testing.T) {
	db := newTestDB(t)

	otherSchool := uuid.New()
	room := m.ClassRoomModel{ClassRoomName: "Kelas 9C", ClassRoomSchoolID: otherSchool}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}

	app := newTestApp(db, uuid.New(), uuid.New(), constants.RoleAdmin)
	resp := doJSON(t, app, fiber.MethodGet, "/classes/"+room.ClassRoomID.String(), "")
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("cross-tenant get status = %d, want 404", resp.StatusCode)
	}
}

func TestEnroll_BackfillsZeroGrades(t *testing.T) {
	db := newTestDB(t)
	schoolID := uuid.New()
	app := newTestApp(db, uuid.New(), schoolID, constants.RoleAdmin)

	room := m.ClassRoomModel{ClassRoomName: "Kelas 8B", ClassRoomSchoolID: schoolID}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}
	subjects := []subjectModel.SubjectModel{
		{SubjectName: "Matematika", SubjectClassID: room.ClassRoomID},
		{SubjectName: "IPA", SubjectClassID: room.ClassRoomID},
	}
	if err := db.Create(&subjects).Error; err != nil {
		t.Fatalf("seed subjects: %v", err)
	}
	student := userModel.UserModel{
		UserName:     "Budi",
		UserEmail:    "budi@example.com",
		UserPassword: "x",
		UserRole:     constants.RoleStudent,
		UserSchoolID: &schoolID,
	}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}

	resp := doJSON(t, app, fiber.MethodPost,
		"/classes/"+room.ClassRoomID.String()+"/enroll",
		fmt.Sprintf(`{"student_id":%q}`, student.UserID))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("enroll status = %d, want 200", resp.StatusCode)
	}

	var moved userModel.UserModel
	if err := db.First(&moved, "user_id = ?", student.UserID).Error; err != nil {
		t.Fatalf("reload student: %v", err)
	}
	if moved.UserClassID == nil || *moved.UserClassID != room.ClassRoomID {
		t.Errorf("student class = %v, want %s", moved.UserClassID, room.ClassRoomID)
	}

	var grades []gradeModel.StudentGradeModel
	if err := db.Where("grade_student_id = ?", student.UserID).Find(&grades).Error; err != nil {
		t.Fatalf("load grades: %v", err)
	}
	if len(grades) != 2 {
		t.Fatalf("backfilled grades = %d, want 2", len(grades))
	}
	for _, g := range grades {
		if g.GradeScore != 0 {
			t.Errorf("backfill score = %d, want 0", g.GradeScore)
		}
	}
}

package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/webssis/ssis/internal/app/models"
	"github.com/webssis/ssis/internal/db"
	"github.com/webssis/ssis/internal/pkg/apperrors"
)

func newMock(t *testing.T) (*db.Gateway, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return db.NewGateway(mock, time.Second, zerolog.Nop()), mock
}

func verify(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func strPtr(s string) *string { return &s }

func TestContainsAny_EscapesWildcards(t *testing.T) {
	sql, args, err := containsAny(`50%_off\`, "collegecode", "collegename").ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}

	wantSQL := "(collegecode ILIKE ? OR collegename ILIKE ?)"
	if sql != wantSQL {
		t.Errorf("expected %q, got %q", wantSQL, sql)
	}
	want := `%50\%\_off\\%`
	if len(args) != 2 || args[0] != want || args[1] != want {
		t.Errorf("expected both args %q, got %v", want, args)
	}
}

func TestCollegeRepository_CreateDuplicate(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewCollegeRepository(gw)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO colleges (collegecode,collegename) VALUES ($1,$2)")).
		WithArgs("CCS", "Computer Studies").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &models.College{Code: "CCS", Name: "Computer Studies"})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected conflict, got %v", err)
	}
	verify(t, mock)
}

func TestCollegeRepository_GetAll(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewCollegeRepository(gw)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT collegecode, collegename FROM colleges ORDER BY collegecode ASC")).
		WillReturnRows(pgxmock.NewRows([]string{"collegecode", "collegename"}).
			AddRow("CCS", "Computer Studies").
			AddRow("COE", "Engineering"))

	colleges, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(colleges) != 2 || colleges[1].Code != "COE" {
		t.Errorf("unexpected colleges: %+v", colleges)
	}
	verify(t, mock)
}

func TestCollegeRepository_GetAllEmptyIsNotNil(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewCollegeRepository(gw)

	mock.ExpectQuery("SELECT collegecode, collegename FROM colleges").
		WillReturnRows(pgxmock.NewRows([]string{"collegecode", "collegename"}))

	colleges, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if colleges == nil || len(colleges) != 0 {
		t.Errorf("expected an empty non-nil slice, got %#v", colleges)
	}
}

func TestCollegeRepository_Search(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewCollegeRepository(gw)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE (collegecode ILIKE $1 OR collegename ILIKE $2) ORDER BY collegecode ASC")).
		WithArgs("%comp%", "%comp%").
		WillReturnRows(pgxmock.NewRows([]string{"collegecode", "collegename"}).
			AddRow("CCS", "Computer Studies"))

	colleges, err := repo.Search(context.Background(), "comp")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(colleges) != 1 || colleges[0].Code != "CCS" {
		t.Errorf("unexpected result: %+v", colleges)
	}
	verify(t, mock)
}

func TestCollegeRepository_UpdateRenames(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewCollegeRepository(gw)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE colleges SET collegecode = $1, collegename = $2 WHERE collegecode = $3")).
		WithArgs("CICS", "Computing", "CCS").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	if err := repo.Update(context.Background(), "CCS", &models.College{Code: "CICS", Name: "Computing"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	verify(t, mock)
}

func TestCollegeRepository_UpdateMissing(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewCollegeRepository(gw)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE colleges SET collegecode = $1, collegename = $2 WHERE collegecode = $3")).
		WithArgs("NOPE", "x", "NOPE").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), "NOPE", &models.College{Code: "NOPE", Name: "x"})
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
	verify(t, mock)
}

func TestCollegeRepository_DeleteDetachesProgramsInTransaction(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewCollegeRepository(gw)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE programs SET collegecode = $1 WHERE collegecode = $2")).
		WithArgs(nil, "CCS").
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM colleges WHERE collegecode = $1")).
		WithArgs("CCS").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	if err := repo.Delete(context.Background(), "CCS"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	verify(t, mock)
}

func TestCollegeRepository_DeleteRollsBackOnFailure(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewCollegeRepository(gw)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE programs SET collegecode").
		WithArgs(nil, "CCS").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("DELETE FROM colleges").
		WithArgs("CCS").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	if err := repo.Delete(context.Background(), "CCS"); err == nil {
		t.Fatal("expected an error")
	}
	verify(t, mock)
}

func TestCollegeRepository_Count(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewCollegeRepository(gw)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM colleges")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(7)))

	n, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 7 {
		t.Errorf("expected 7, got %d", n)
	}
}

func TestProgramRepository_CreateUnknownCollege(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewProgramRepository(gw)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO programs (programcode,programname,collegecode) VALUES ($1,$2,$3)")).
		WithArgs("BSCS", "Computer Science", strPtr("ZZZ")).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Create(context.Background(), &models.Program{Code: "BSCS", Name: "Computer Science", CollegeCode: strPtr("ZZZ")})
	if !errors.Is(err, apperrors.ErrInvalidReference) {
		t.Fatalf("expected invalid reference, got %v", err)
	}
	if err.Error() != "College 'ZZZ' does not exist" {
		t.Errorf("unexpected message %q", err.Error())
	}
	verify(t, mock)
}

func TestProgramRepository_GetAllWithDetachedProgram(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewProgramRepository(gw)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT programcode, programname, collegecode FROM programs ORDER BY programcode ASC")).
		WillReturnRows(pgxmock.NewRows([]string{"programcode", "programname", "collegecode"}).
			AddRow("BSCS", "Computer Science", "CCS").
			AddRow("BSIT", "Information Technology", nil))

	programs, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(programs) != 2 {
		t.Fatalf("expected 2 programs, got %d", len(programs))
	}
	if programs[0].CollegeCode == nil || *programs[0].CollegeCode != "CCS" {
		t.Errorf("expected CCS, got %v", programs[0].CollegeCode)
	}
	if programs[1].CollegeCode != nil {
		t.Errorf("expected a detached program, got %v", *programs[1].CollegeCode)
	}
	verify(t, mock)
}

func TestProgramRepository_UpdateMissing(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewProgramRepository(gw)

	// SetMap orders columns alphabetically
	mock.ExpectExec(regexp.QuoteMeta("UPDATE programs SET collegecode = $1, programcode = $2, programname = $3 WHERE programcode = $4")).
		WithArgs(strPtr("CCS"), "GHOST", "Nothing", "GHOST").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), "GHOST", &models.Program{Code: "GHOST", Name: "Nothing", CollegeCode: strPtr("CCS")})
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
	if err == nil || err.Error() != "Program not found" {
		t.Errorf("unexpected message %v", err)
	}
	verify(t, mock)
}

func TestProgramRepository_SearchCoversCollegeCode(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewProgramRepository(gw)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE (programcode ILIKE $1 OR programname ILIKE $2 OR collegecode ILIKE $3)")).
		WithArgs("%ccs%", "%ccs%", "%ccs%").
		WillReturnRows(pgxmock.NewRows([]string{"programcode", "programname", "collegecode"}))

	if _, err := repo.Search(context.Background(), "ccs"); err != nil {
		t.Fatalf("Search: %v", err)
	}
	verify(t, mock)
}

func TestProgramRepository_DeleteDetachesStudents(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewProgramRepository(gw)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET programcode = $1 WHERE programcode = $2")).
		WithArgs(nil, "BSCS").
		WillReturnResult(pgxmock.NewResult("UPDATE", 12))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM programs WHERE programcode = $1")).
		WithArgs("BSCS").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	if err := repo.Delete(context.Background(), "BSCS"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	verify(t, mock)
}

func TestStudentRepository_CreateDuplicate(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewStudentRepository(gw)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO students (idnum,firstname,lastname,sex,yearlevel,programcode) VALUES ($1,$2,$3,$4,$5,$6)")).
		WithArgs("2023-0001", "Juan", "Dela Cruz", "Male", int32(2), strPtr("BSCS")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &models.Student{
		IDNum: "2023-0001", FirstName: "Juan", LastName: "Dela Cruz",
		Sex: "Male", YearLevel: 2, ProgramCode: strPtr("BSCS"),
	})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected conflict, got %v", err)
	}
	verify(t, mock)
}

func TestStudentRepository_GetAll(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewStudentRepository(gw)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT idnum, firstname, lastname, sex, yearlevel, programcode FROM students ORDER BY idnum ASC")).
		WillReturnRows(pgxmock.NewRows([]string{"idnum", "firstname", "lastname", "sex", "yearlevel", "programcode"}).
			AddRow("2023-0001", "Juan", "Dela Cruz", "Male", int32(2), "BSCS").
			AddRow("2023-0002", "Maria", "Santos", "Female", int32(1), nil))

	students, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("expected 2 students, got %d", len(students))
	}
	if students[0].YearLevel != 2 || *students[0].ProgramCode != "BSCS" {
		t.Errorf("unexpected first student: %+v", students[0])
	}
	if students[1].ProgramCode != nil {
		t.Errorf("expected nil program, got %v", *students[1].ProgramCode)
	}
	verify(t, mock)
}

func TestStudentRepository_SearchSkipsYearLevel(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewStudentRepository(gw)

	kw := "%dela%"
	mock.ExpectQuery(regexp.QuoteMeta("WHERE (idnum ILIKE $1 OR firstname ILIKE $2 OR lastname ILIKE $3 OR sex ILIKE $4 OR programcode ILIKE $5)")).
		WithArgs(kw, kw, kw, kw, kw).
		WillReturnRows(pgxmock.NewRows([]string{"idnum", "firstname", "lastname", "sex", "yearlevel", "programcode"}))

	if _, err := repo.Search(context.Background(), "dela"); err != nil {
		t.Fatalf("Search: %v", err)
	}
	verify(t, mock)
}

func TestStudentRepository_UpdateUnknownProgram(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewStudentRepository(gw)

	// SetMap orders columns alphabetically
	mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET firstname = $1, idnum = $2, lastname = $3, programcode = $4, sex = $5, yearlevel = $6 WHERE idnum = $7")).
		WithArgs("Juan", "2023-0001", "Dela Cruz", strPtr("NOPE"), "Male", int32(3), "2023-0001").
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Update(context.Background(), "2023-0001", &models.Student{
		IDNum: "2023-0001", FirstName: "Juan", LastName: "Dela Cruz",
		Sex: "Male", YearLevel: 3, ProgramCode: strPtr("NOPE"),
	})
	if !errors.Is(err, apperrors.ErrInvalidReference) {
		t.Errorf("expected invalid reference, got %v", err)
	}
	verify(t, mock)
}

func TestStudentRepository_UpdateMissing(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewStudentRepository(gw)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET firstname = $1, idnum = $2, lastname = $3, programcode = $4, sex = $5, yearlevel = $6 WHERE idnum = $7")).
		WithArgs("Juan", "ghost", "Dela Cruz", strPtr("BSCS"), "Male", int32(1), "ghost").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), "ghost", &models.Student{
		IDNum: "ghost", FirstName: "Juan", LastName: "Dela Cruz",
		Sex: "Male", YearLevel: 1, ProgramCode: strPtr("BSCS"),
	})
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
	if err == nil || err.Error() != "Student not found" {
		t.Errorf("unexpected message %v", err)
	}
	verify(t, mock)
}

func TestStudentRepository_CreateBindsYearLevelExactly(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewStudentRepository(gw)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO students (idnum,firstname,lastname,sex,yearlevel,programcode) VALUES ($1,$2,$3,$4,$5,$6)")).
		WithArgs("2023-0001", "Juan", "Dela Cruz", "Male", int32(2147483647), strPtr("BSCS")).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), &models.Student{
		IDNum: "2023-0001", FirstName: "Juan", LastName: "Dela Cruz",
		Sex: "Male", YearLevel: 2147483647, ProgramCode: strPtr("BSCS"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	verify(t, mock)
}

func TestStudentRepository_DeleteMissingIsNoop(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewStudentRepository(gw)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM students WHERE idnum = $1")).
		WithArgs("ghost").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	if err := repo.Delete(context.Background(), "ghost"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	verify(t, mock)
}

func TestUserRepository_CreateReturnsID(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewUserRepository(gw)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username,useremail,userpass) VALUES ($1,$2,$3) RETURNING userid")).
		WithArgs("alice", "alice@example.com", "$2a$hash").
		WillReturnRows(pgxmock.NewRows([]string{"userid"}).AddRow(int64(42)))

	id, err := repo.Create(context.Background(), &models.User{Username: "alice", Email: "alice@example.com", Password: "$2a$hash"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 42 {
		t.Errorf("expected id 42, got %d", id)
	}
	verify(t, mock)
}

func TestUserRepository_GetByUsernameMissing(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewUserRepository(gw)

	mock.ExpectQuery("SELECT userid, username, useremail, userpass FROM users").
		WithArgs("ghost").
		WillReturnRows(pgxmock.NewRows([]string{"userid", "username", "useremail", "userpass"}))

	_, err := repo.GetByUsername(context.Background(), "ghost")
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_GetAllOmitsPassword(t *testing.T) {
	gw, mock := newMock(t)
	repo := NewUserRepository(gw)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT userid, username, useremail FROM users ORDER BY userid ASC")).
		WillReturnRows(pgxmock.NewRows([]string{"userid", "username", "useremail"}).
			AddRow(int64(1), "alice", "alice@example.com"))

	users, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(users) != 1 || users[0].Password != "" {
		t.Errorf("unexpected users: %+v", users)
	}
	verify(t, mock)
}

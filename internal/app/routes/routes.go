package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/webssis/ssis/internal/app/controllers"
)

// Controllers groups the handlers mounted under /api
type Controllers struct {
	College *controllers.CollegeController
	Program *controllers.ProgramController
	Student *controllers.StudentController
	Auth    *controllers.AuthController
	Email   *controllers.EmailController
	Health  *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	api := router.Group("/api")

	// Search keywords are catch-all so that a keyword may contain "/"

	api.GET("/health", c.Health.Health)

	// --- Auth routes ---
	api.POST("/register", c.Auth.Register)
	api.POST("/signup", c.Auth.Register)
	api.POST("/login", c.Auth.Login)
	api.GET("/users", c.Auth.GetUsers)
	api.POST("/send-welcome-email", c.Email.SendWelcomeEmail)

	// --- College routes ---
	api.POST("/add_college", c.College.CreateCollege)
	api.GET("/college_list", c.College.GetAllColleges)
	api.PUT("/colleges/:collegecode", c.College.UpdateCollege)
	api.DELETE("/delete_college/:collegecode", c.College.DeleteCollege)
	api.GET("/search_college", c.College.SearchColleges)
	api.GET("/search_college/*keyword", c.College.SearchColleges)
	api.GET("/college_count", c.College.CountColleges)

	// --- Program routes ---
	api.POST("/add_program", c.Program.CreateProgram)
	api.GET("/program_list", c.Program.GetAllPrograms)
	api.PUT("/programs/:programcode", c.Program.UpdateProgram)
	api.DELETE("/delete_program/:programcode", c.Program.DeleteProgram)
	api.GET("/search_program", c.Program.SearchPrograms)
	api.GET("/search_program/*keyword", c.Program.SearchPrograms)
	api.GET("/program_count", c.Program.CountPrograms)

	// --- Student routes ---
	api.POST("/add_student", c.Student.CreateStudent)
	api.GET("/student_list", c.Student.GetAllStudents)
	api.PUT("/students/:idnum", c.Student.UpdateStudent)
	api.DELETE("/delete_student/:idnum", c.Student.DeleteStudent)
	api.GET("/search_student", c.Student.SearchStudents)
	api.GET("/search_student/*keyword", c.Student.SearchStudents)
	api.GET("/student_count", c.Student.CountStudents)
}

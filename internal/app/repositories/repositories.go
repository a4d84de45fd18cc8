package repositories

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
}

// NewRepositories initializes all repositories on top of the collection
// file at storePath
func NewRepositories(storePath string) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(storePath),
	}
}

package services

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"scholarflow/app/models"
)

// Roster administration: create/update, list and delete for students,
// teachers, classes and subjects. Deletes run the cascade rules before the
// parent record is removed, all within one persisting write.

func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}

// --- students ---

func (s *Service) GetAllStudents() ([]*models.Student, error) {
	out := []*models.Student{}
	err := s.store.View(func(st *models.State) error {
		for _, stu := range st.Students {
			cp := *stu
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

func (s *Service) GetStudentsByClass(classID string) ([]*models.Student, error) {
	out := []*models.Student{}
	err := s.store.View(func(st *models.State) error {
		for _, stu := range st.Students {
			if stu.ClassID == classID {
				cp := *stu
				out = append(out, &cp)
			}
		}
		return nil
	})
	return out, err
}

// SaveStudent upserts: an empty ID creates, a known ID updates in place.
func (s *Service) SaveStudent(actor *models.User, student *models.Student) (*models.Student, error) {
	var saved *models.Student
	err := s.store.Update(func(st *models.State) error {
		if student.ID != "" {
			existing := st.StudentByID(student.ID)
			if existing == nil {
				return &NotFoundError{Kind: "student", ID: student.ID}
			}
			*existing = *student
			s.logAudit(st, actor, "UPDATE_STUDENT", fmt.Sprintf("Updated student %s", student.Name))
			cp := *existing
			saved = &cp
			return nil
		}

		created := *student
		created.ID = uuid.NewString()
		if created.AvatarURL == "" {
			created.AvatarURL = avatarURL(created.Name)
		}
		st.Students = append(st.Students, &created)
		s.logAudit(st, actor, "CREATE_STUDENT", fmt.Sprintf("Created student %s", created.Name))
		cp := created
		saved = &cp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *Service) DeleteStudent(actor *models.User, studentID string) error {
	return s.store.Update(func(st *models.State) error {
		if st.StudentByID(studentID) == nil {
			return &NotFoundError{Kind: "student", ID: studentID}
		}
		summary := runCascade(st, "student", studentID)

		kept := st.Students[:0]
		for _, stu := range st.Students {
			if stu.ID != studentID {
				kept = append(kept, stu)
			}
		}
		st.Students = kept

		s.logAudit(st, actor, "DELETE_STUDENT", fmt.Sprintf("Deleted student %s (%s)", studentID, summary))
		return nil
	})
}

// --- teachers ---

func (s *Service) GetAllTeachers() ([]*models.User, error) {
	out := []*models.User{}
	err := s.store.View(func(st *models.State) error {
		for _, u := range st.Users {
			if u.Role == models.RoleTeacher {
				cp := *u
				out = append(out, &cp)
			}
		}
		return nil
	})
	return out, err
}

func (s *Service) SaveTeacher(actor *models.User, teacher *models.User) (*models.User, error) {
	var saved *models.User
	err := s.store.Update(func(st *models.State) error {
		if teacher.ID != "" {
			existing := st.UserByID(teacher.ID)
			if existing == nil {
				return &NotFoundError{Kind: "teacher", ID: teacher.ID}
			}
			role := existing.Role
			*existing = *teacher
			existing.Role = role
			s.logAudit(st, actor, "UPDATE_TEACHER", fmt.Sprintf("Updated teacher %s", teacher.Name))
			cp := *existing
			saved = &cp
			return nil
		}

		created := *teacher
		created.ID = uuid.NewString()
		created.Role = models.RoleTeacher
		if created.AvatarURL == "" {
			created.AvatarURL = avatarURL(created.Name)
		}
		st.Users = append(st.Users, &created)
		s.logAudit(st, actor, "CREATE_TEACHER", fmt.Sprintf("Created teacher %s", created.Name))
		cp := created
		saved = &cp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *Service) DeleteTeacher(actor *models.User, teacherID string) error {
	return s.store.Update(func(st *models.State) error {
		if st.UserByID(teacherID) == nil {
			return &NotFoundError{Kind: "teacher", ID: teacherID}
		}
		summary := runCascade(st, "teacher", teacherID)

		kept := st.Users[:0]
		for _, u := range st.Users {
			if u.ID != teacherID {
				kept = append(kept, u)
			}
		}
		st.Users = kept

		s.logAudit(st, actor, "DELETE_TEACHER", fmt.Sprintf("Deleted teacher %s (%s)", teacherID, summary))
		return nil
	})
}

// --- classes ---

func (s *Service) GetAllClasses() ([]*models.ClassGroup, error) {
	out := []*models.ClassGroup{}
	err := s.store.View(func(st *models.State) error {
		for _, c := range st.Classes {
			cp := *c
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// GetClasses is role-scoped: admins see every class, teachers only their own.
func (s *Service) GetClasses(actor *models.User) ([]*models.ClassGroup, error) {
	out := []*models.ClassGroup{}
	err := s.store.View(func(st *models.State) error {
		for _, c := range st.Classes {
			if actor.IsAdmin() || c.TeacherID == actor.ID {
				cp := *c
				out = append(out, &cp)
			}
		}
		return nil
	})
	return out, err
}

func (s *Service) SaveClass(actor *models.User, cls *models.ClassGroup) (*models.ClassGroup, error) {
	var saved *models.ClassGroup
	err := s.store.Update(func(st *models.State) error {
		if cls.ID != "" {
			existing := st.ClassByID(cls.ID)
			if existing == nil {
				return &NotFoundError{Kind: "class", ID: cls.ID}
			}
			*existing = *cls
			s.logAudit(st, actor, "UPDATE_CLASS", fmt.Sprintf("Updated class %s", cls.Name))
			cp := *existing
			saved = &cp
			return nil
		}

		created := *cls
		created.ID = uuid.NewString()
		st.Classes = append(st.Classes, &created)
		s.logAudit(st, actor, "CREATE_CLASS", fmt.Sprintf("Created class %s", created.Name))
		cp := created
		saved = &cp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *Service) DeleteClass(actor *models.User, classID string) error {
	return s.store.Update(func(st *models.State) error {
		if st.ClassByID(classID) == nil {
			return &NotFoundError{Kind: "class", ID: classID}
		}
		summary := runCascade(st, "class", classID)

		kept := st.Classes[:0]
		for _, c := range st.Classes {
			if c.ID != classID {
				kept = append(kept, c)
			}
		}
		st.Classes = kept

		s.logAudit(st, actor, "DELETE_CLASS", fmt.Sprintf("Deleted class %s (%s)", classID, summary))
		return nil
	})
}

// --- subjects ---

func (s *Service) GetAllSubjects() ([]*models.Subject, error) {
	out := []*models.Subject{}
	err := s.store.View(func(st *models.State) error {
		for _, sub := range st.Subjects {
			cp := *sub
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// GetSubjects is role-scoped like GetClasses.
func (s *Service) GetSubjects(actor *models.User) ([]*models.Subject, error) {
	out := []*models.Subject{}
	err := s.store.View(func(st *models.State) error {
		for _, sub := range st.Subjects {
			if actor.IsAdmin() || sub.TeacherID == actor.ID {
				cp := *sub
				out = append(out, &cp)
			}
		}
		return nil
	})
	return out, err
}

func (s *Service) SaveSubject(actor *models.User, sub *models.Subject) (*models.Subject, error) {
	var saved *models.Subject
	err := s.store.Update(func(st *models.State) error {
		if sub.ID != "" {
			existing := st.SubjectByID(sub.ID)
			if existing == nil {
				return &NotFoundError{Kind: "subject", ID: sub.ID}
			}
			*existing = *sub
			s.logAudit(st, actor, "UPDATE_SUBJECT", fmt.Sprintf("Updated subject %s", sub.Name))
			cp := *existing
			saved = &cp
			return nil
		}

		created := *sub
		created.ID = uuid.NewString()
		st.Subjects = append(st.Subjects, &created)
		s.logAudit(st, actor, "CREATE_SUBJECT", fmt.Sprintf("Created subject %s", created.Name))
		cp := created
		saved = &cp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *Service) DeleteSubject(actor *models.User, subjectID string) error {
	return s.store.Update(func(st *models.State) error {
		if st.SubjectByID(subjectID) == nil {
			return &NotFoundError{Kind: "subject", ID: subjectID}
		}
		summary := runCascade(st, "subject", subjectID)

		kept := st.Subjects[:0]
		for _, sub := range st.Subjects {
			if sub.ID != subjectID {
				kept = append(kept, sub)
			}
		}
		st.Subjects = kept

		s.logAudit(st, actor, "DELETE_SUBJECT", fmt.Sprintf("Deleted subject %s (%s)", subjectID, summary))
		return nil
	})
}

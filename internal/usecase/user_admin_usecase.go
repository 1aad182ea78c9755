package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courseadmin/internal/domain/contract"
	"courseadmin/internal/domain/entity"
	usecasecontract "courseadmin/internal/usecase/contract"
)

// UserAdminUsecase implements the admin-side user operations: teacher and
// student listings, teacher provisioning and status toggling.
type UserAdminUsecase struct {
	userRepo        contract.IUserRepository
	roleRepo        contract.IRoleRepository
	courseRepo      contract.ICourseRepository
	hasher          contract.IHasher
	mailService     contract.IMailService
	uuidGenerator   contract.IUUIDGenerator
	randomGenerator contract.IRandomGenerator
	validator       usecasecontract.IValidator
	config          usecasecontract.IConfigProvider
	logger          usecasecontract.IAppLogger
}

func NewUserAdminUsecase(
	userRepo contract.IUserRepository,
	roleRepo contract.IRoleRepository,
	courseRepo contract.ICourseRepository,
	hasher contract.IHasher,
	mailService contract.IMailService,
	uuidGenerator contract.IUUIDGenerator,
	randomGenerator contract.IRandomGenerator,
	validator usecasecontract.IValidator,
	config usecasecontract.IConfigProvider,
	logger usecasecontract.IAppLogger,
) *UserAdminUsecase {
	return &UserAdminUsecase{
		userRepo:        userRepo,
		roleRepo:        roleRepo,
		courseRepo:      courseRepo,
		hasher:          hasher,
		mailService:     mailService,
		uuidGenerator:   uuidGenerator,
		randomGenerator: randomGenerator,
		validator:       validator,
		config:          config,
		logger:          logger,
	}
}

var _ usecasecontract.IUserAdminUseCase = (*UserAdminUsecase)(nil)

// ListTeachers pages teachers, each annotated with its APPROVED course count.
func (uc *UserAdminUsecase) ListTeachers(ctx context.Context, search string, page, limit int) (usecasecontract.Page[usecasecontract.UserListItem], error) {
	page, limit = normalizePageLimit(page, limit)

	role, err := uc.roleRepo.GetRoleByName(ctx, entity.RoleTeacher)
	if err != nil {
		return usecasecontract.Page[usecasecontract.UserListItem]{}, roleLookupError(err)
	}

	teachers, total, err := uc.userRepo.FindByRole(ctx, role.ID, search, page, limit)
	if err != nil {
		return usecasecontract.Page[usecasecontract.UserListItem]{}, err
	}

	items := make([]usecasecontract.UserListItem, 0, len(teachers))
	for _, teacher := range teachers {
		count, err := uc.courseRepo.CountApprovedByTeacher(ctx, teacher.ID)
		if err != nil {
			return usecasecontract.Page[usecasecontract.UserListItem]{}, err
		}
		totalCourses := int(count)
		item := toUserListItem(teacher, role)
		item.TotalCourses = &totalCourses
		items = append(items, item)
	}

	return usecasecontract.Page[usecasecontract.UserListItem]{
		Items: items,
		Total: int(total),
		Page:  page,
		Pages: pageCount(int(total), limit),
	}, nil
}

// ListStudents pages students.
func (uc *UserAdminUsecase) ListStudents(ctx context.Context, search string, page, limit int) (usecasecontract.Page[usecasecontract.UserListItem], error) {
	page, limit = normalizePageLimit(page, limit)

	role, err := uc.roleRepo.GetRoleByName(ctx, entity.RoleStudent)
	if err != nil {
		return usecasecontract.Page[usecasecontract.UserListItem]{}, roleLookupError(err)
	}

	students, total, err := uc.userRepo.FindByRole(ctx, role.ID, search, page, limit)
	if err != nil {
		return usecasecontract.Page[usecasecontract.UserListItem]{}, err
	}

	items := make([]usecasecontract.UserListItem, 0, len(students))
	for _, student := range students {
		items = append(items, toUserListItem(student, role))
	}

	return usecasecontract.Page[usecasecontract.UserListItem]{
		Items: items,
		Total: int(total),
		Page:  page,
		Pages: pageCount(int(total), limit),
	}, nil
}

// CreateTeacher provisions an ACTIVE teacher account with a generated
// password and emails the credentials to the new teacher.
func (uc *UserAdminUsecase) CreateTeacher(ctx context.Context, email, fullName string) (*usecasecontract.UserListItem, error) {
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := uc.validator.ValidateFullName(fullName); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, contract.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailInUse
	}

	role, err := uc.roleRepo.GetRoleByName(ctx, entity.RoleTeacher)
	if err != nil {
		return nil, roleLookupError(err)
	}

	password, err := uc.randomGenerator.GeneratePassword(uc.config.GetTeacherPasswordLength())
	if err != nil {
		uc.logger.Errorf("failed to generate teacher password: %v", err)
		return nil, err
	}
	hashed, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash teacher password: %v", err)
		return nil, err
	}

	now := time.Now()
	teacher := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Email:        email,
		PasswordHash: hashed,
		FullName:     fullName,
		RoleID:       role.ID,
		Status:       entity.UserStatusActive,
		IsBanned:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.CreateUser(ctx, teacher); err != nil {
		uc.logger.Errorf("failed to create teacher: %v", err)
		return nil, err
	}

	if uc.config.GetSendCredentialsEmail() {
		if err := uc.mailService.SendEmail(ctx, email, "Your Teacher Account Credentials", teacherCredentialsBody(fullName, email, password)); err != nil {
			return nil, fmt.Errorf("failed to send email: %w", err)
		}
	}

	item := toUserListItem(teacher, role)
	return &item, nil
}

// ToggleUserStatus flips ACTIVE and INACTIVE. isBanned tracks status and is
// never written on its own.
func (uc *UserAdminUsecase) ToggleUserStatus(ctx context.Context, userID string) (*usecasecontract.UserListItem, error) {
	if err := validateID(userID); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if user.Status == entity.UserStatusActive {
		user.Status = entity.UserStatusInactive
	} else {
		user.Status = entity.UserStatusActive
	}
	user.IsBanned = user.Status == entity.UserStatusInactive
	user.UpdatedAt = time.Now()

	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	role, err := uc.roleRepo.GetRoleByID(ctx, updated.RoleID)
	if err != nil {
		return nil, roleLookupError(err)
	}

	item := toUserListItem(updated, role)
	return &item, nil
}

func toUserListItem(user *entity.User, role *entity.Role) usecasecontract.UserListItem {
	return usecasecontract.UserListItem{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      usecasecontract.RoleRef{ID: role.ID, Name: role.Name},
		Status:    user.Status,
		IsBanned:  user.IsBanned,
		CreatedAt: user.CreatedAt,
	}
}

func teacherCredentialsBody(fullName, email, password string) string {
	return fmt.Sprintf(
		"Welcome, %s!\r\n\r\n"+
			"Your teacher account has been created successfully.\r\n\r\n"+
			"Email: %s\r\n"+
			"Password: %s\r\n\r\n"+
			"For security, we recommend changing your password after logging in.\r\n\r\n"+
			"Best regards,\r\nYour Platform Team",
		fullName, email, password,
	)
}

package employer

import (
	"context"

	"go.uber.org/zap"

	"github.com/nitinco/nexsphere/internal/shared/schema"
)

//go:generate mockgen -source=employer_service.go -destination=mock/employer_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]EmployerResponse, error)
}

type service struct {
	schema schema.EnsureTabler
	repo   Repository
	logger *zap.Logger
}

func NewService(sch schema.EnsureTabler, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employer.service")
	}
	return &service{schema: sch, repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]EmployerResponse, error) {
	if _, err := s.schema.EnsureTable(ctx, TableName, TableDDL); err != nil {
		return nil, err
	}

	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employers failed", zap.Error(err))
		return nil, MapRepositoryError(err)
	}

	return MapToListResponse(emps), nil
}

func MapToResponse(emp Employer) EmployerResponse {
	resp := EmployerResponse{
		ID:             emp.ID.String(),
		Name:           emp.Name,
		CompanyName:    emp.CompanyName,
		BusinessEmail:  emp.BusinessEmail,
		BusinessNumber: emp.BusinessNumber,
		Location:       emp.Location,
		Designation:    emp.Designation,
		CompanySize:    emp.CompanySize,
		Status:         emp.Status,
	}
	if emp.PaymentID != nil {
		resp.PaymentID = emp.PaymentID.String()
	}
	return resp
}

func MapToListResponse(emps []Employer) []EmployerResponse {
	res := make([]EmployerResponse, len(emps))
	for i, e := range emps {
		res[i] = MapToResponse(e)
	}
	return res
}

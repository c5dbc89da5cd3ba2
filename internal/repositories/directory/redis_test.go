package directory

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/wpc/servicesync/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetEmployee() {
	ctx := context.Background()
	employee := &models.Employee{
		ID:         "test-employee-id",
		BadgeID:    "1234",
		Name:       "Test Porter",
		Role:       "HOSTESS",
		HospitalID: "test-hospital-id",
		Active:     true,
	}

	err := s.repo.SaveEmployee(ctx, &SaveEmployeeInput{
		Employee: employee,
	})
	s.Require().NoError(err)

	got, err := s.repo.GetEmployee(ctx, &GetEmployeeInput{
		EmployeeID: "test-employee-id",
	})

	s.Require().NoError(err)
	s.Equal(employee, got)
}

func (s *RedisRepositoryTestSuite) TestGetEmployeeNotFound() {
	_, err := s.repo.GetEmployee(context.Background(), &GetEmployeeInput{
		EmployeeID: "no-such-id",
	})

	s.ErrorIs(err, ErrEmployeeNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetWard() {
	ctx := context.Background()
	ward := &models.Ward{
		ID:           "test-ward-id",
		Name:         "A1",
		HospitalID:   "test-hospital-id",
		HospitalName: "Test General",
	}

	err := s.repo.SaveWard(ctx, &SaveWardInput{
		Ward: ward,
	})
	s.Require().NoError(err)

	got, err := s.repo.GetWard(ctx, &GetWardInput{
		WardID: "test-ward-id",
	})

	s.Require().NoError(err)
	s.Equal(ward, got)
}

func (s *RedisRepositoryTestSuite) TestGetWardNotFound() {
	_, err := s.repo.GetWard(context.Background(), &GetWardInput{
		WardID: "no-such-id",
	})

	s.ErrorIs(err, ErrWardNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveEmployeeOverwrites() {
	ctx := context.Background()
	employee := &models.Employee{
		ID:      "test-employee-id",
		BadgeID: "1234",
		Name:    "Test Porter",
		Active:  true,
	}

	err := s.repo.SaveEmployee(ctx, &SaveEmployeeInput{Employee: employee})
	s.Require().NoError(err)

	employee.Active = false
	err = s.repo.SaveEmployee(ctx, &SaveEmployeeInput{Employee: employee})
	s.Require().NoError(err)

	got, err := s.repo.GetEmployee(ctx, &GetEmployeeInput{
		EmployeeID: "test-employee-id",
	})

	s.Require().NoError(err)
	s.False(got.Active)
}

func (s *RedisRepositoryTestSuite) TestNilInputs() {
	ctx := context.Background()

	err := s.repo.SaveEmployee(ctx, nil)
	s.Error(err)

	_, err = s.repo.GetEmployee(ctx, &GetEmployeeInput{})
	s.Error(err)

	err = s.repo.SaveWard(ctx, nil)
	s.Error(err)

	_, err = s.repo.GetWard(ctx, &GetWardInput{})
	s.Error(err)
}

package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"depot/internal/adapters/out/postgres/customerrepo"
	"depot/internal/adapters/out/postgres/pgtest"
	"depot/internal/core/domain/model/customer"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type CustomerRepositoryTestSuite struct {
	suite.Suite
	pg   *pgtest.Database
	repo *customerrepo.GormCustomerRepository
}

func (suite *CustomerRepositoryTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.repo = customerrepo.NewGormCustomerRepository(pg.DB, pgtest.NoopTracker{})
}

func (suite *CustomerRepositoryTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *CustomerRepositoryTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *CustomerRepositoryTestSuite) newCustomer(name, phone string) *customer.Customer {
	c, err := customer.NewCustomer(kernel.NewUUID(), customer.Contact{
		Name:   name,
		Phone:  phone,
		Street: "12 Main St",
		Postal: "P5A 2S9",
	})
	suite.Require().NoError(err)
	return c
}

func (suite *CustomerRepositoryTestSuite) TestAddAndGet() {
	ctx := context.Background()
	c := suite.newCustomer("JOHN SMITH", "705-555-1234")
	c.Lock()

	suite.Require().NoError(suite.repo.Add(ctx, c))

	got, err := suite.repo.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(c.ID()))
	suite.Equal(c.Contact(), got.Contact())
	suite.True(got.Locked())
	suite.WithinDuration(c.CreatedAt(), got.CreatedAt(), time.Millisecond)
}

func (suite *CustomerRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryTestSuite) TestAdd_DuplicatePhoneConflicts() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newCustomer("JOHN SMITH", "705-555-1234")))

	err := suite.repo.Add(ctx, suite.newCustomer("Jane Smith", "705-555-1234"))

	suite.Require().ErrorIs(err, errs.ErrConflict)
	var conflict *errs.ConflictError
	suite.Require().ErrorAs(err, &conflict)
	suite.Equal("phone", conflict.ParamName)
}

func (suite *CustomerRepositoryTestSuite) TestAdd_PhonelessNameConflicts() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newCustomer("Mary Jones", "")))

	err := suite.repo.Add(ctx, suite.newCustomer("MARY JONES", ""))

	var conflict *errs.ConflictError
	suite.Require().ErrorAs(err, &conflict)
	suite.Equal("name", conflict.ParamName)
}

func (suite *CustomerRepositoryTestSuite) TestAdd_SameNameWithPhonesIsAllowed() {
	ctx := context.Background()

	suite.Require().NoError(suite.repo.Add(ctx, suite.newCustomer("Mary Jones", "705-555-0001")))
	suite.Require().NoError(suite.repo.Add(ctx, suite.newCustomer("Mary Jones", "705-555-0002")))
	suite.Require().NoError(suite.repo.Add(ctx, suite.newCustomer("Mary Jones", "")))
}

func (suite *CustomerRepositoryTestSuite) TestFindByPhone() {
	ctx := context.Background()
	c := suite.newCustomer("JOHN SMITH", "705-555-1234")
	suite.Require().NoError(suite.repo.Add(ctx, c))

	got, err := suite.repo.FindByPhone(ctx, " 705-555-1234 ")
	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(c.ID()))

	_, err = suite.repo.FindByPhone(ctx, "705-555-9999")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repo.FindByPhone(ctx, "")
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *CustomerRepositoryTestSuite) TestFindByName() {
	ctx := context.Background()
	withPhone := suite.newCustomer("John Smith", "705-555-1234")
	suite.Require().NoError(suite.repo.Add(ctx, withPhone))
	phoneless := suite.newCustomer("JOHN SMITH", "")
	suite.Require().NoError(suite.repo.Add(ctx, phoneless))

	suite.Run("any customer, oldest first", func() {
		got, err := suite.repo.FindByName(ctx, "john smith", false)
		suite.Require().NoError(err)
		suite.True(got.ID().IsEqual(withPhone.ID()))
	})

	suite.Run("phoneless only", func() {
		got, err := suite.repo.FindByName(ctx, "john smith", true)
		suite.Require().NoError(err)
		suite.True(got.ID().IsEqual(phoneless.ID()))
	})

	suite.Run("no match", func() {
		_, err := suite.repo.FindByName(ctx, "john smit", false)
		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *CustomerRepositoryTestSuite) TestUpdate() {
	ctx := context.Background()
	c := suite.newCustomer("JOHN SMITH", "705-555-1234")
	c.Lock()
	suite.Require().NoError(suite.repo.Add(ctx, c))

	suite.Require().NoError(c.UpdateContact(customer.Contact{Name: "John Smith", Email: "js@example.com"}))
	c.Unlock()
	suite.Require().NoError(suite.repo.Update(ctx, c))

	got, err := suite.repo.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal("John Smith", got.Name())
	suite.Empty(got.Phone(), "cleared phone is written as NULL")
	suite.Empty(got.Street())
	suite.Equal("js@example.com", got.Email())
	suite.False(got.Locked())
}

func (suite *CustomerRepositoryTestSuite) TestUpdate_NotFound() {
	err := suite.repo.Update(context.Background(), suite.newCustomer("Ghost", ""))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryTestSuite) TestUpdate_PhoneTakenConflicts() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newCustomer("JOHN SMITH", "705-555-1234")))
	other := suite.newCustomer("Jane Doe", "705-555-0000")
	suite.Require().NoError(suite.repo.Add(ctx, other))

	suite.Require().NoError(other.UpdateContact(customer.Contact{Name: "Jane Doe", Phone: "705-555-1234"}))
	err := suite.repo.Update(ctx, other)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *CustomerRepositoryTestSuite) TestDelete() {
	ctx := context.Background()
	c := suite.newCustomer("JOHN SMITH", "705-555-1234")
	suite.Require().NoError(suite.repo.Add(ctx, c))

	suite.Require().NoError(suite.repo.Delete(ctx, c.ID()))

	_, err := suite.repo.Get(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repo.Delete(ctx, c.ID()), errs.ErrObjectNotFound)
}

func TestCustomerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryTestSuite))
}

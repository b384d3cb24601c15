// Package seed fills an empty database with demo inventory data.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aims/backend/internal/domain/identity"
	"github.com/aims/backend/internal/domain/inventory"
	"github.com/aims/backend/internal/domain/shared"
	"github.com/aims/backend/internal/infrastructure/config"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Repositories are the stores the seeder writes through
type Repositories struct {
	Users         identity.UserRepository
	Categories    inventory.CategoryRepository
	Manufacturers inventory.ManufacturerRepository
	Locations     inventory.LocationRepository
	Assets        inventory.AssetRepository
}

// DefaultUser is an account created before any generated data
type DefaultUser struct {
	Name  string
	Email string
	Role  identity.Role
}

// DefaultUsers are the three login accounts, one per role
var DefaultUsers = []DefaultUser{
	{Name: "Admin User", Email: "admin@aims.com", Role: identity.RoleSuperAdmin},
	{Name: "Inventory Manager", Email: "manager@aims.com", Role: identity.RoleInventoryManager},
	{Name: "Inventory User", Email: "user@aims.com", Role: identity.RoleInventoryUser},
}

var deviceTypes = []string{
	"Laptop", "Desktop", "Monitor", "Printer", "Router", "Switch", "Server", "Tablet",
	"Smartphone", "Projector", "Camera", "Headset", "Microphone", "Speaker",
	"External Hard Drive", "USB Flash Drive", "Docking Station", "Webcam", "Smartwatch",
	"Fitness Tracker", "VR Headset", "Network Attached Storage (NAS)", "Firewall Appliance",
	"Access Point", "KVM Switch", "Graphics Tablet", "3D Printer", "Digital Whiteboard",
	"Smart Home Hub", "E-Reader",
}

var assetKinds = []string{"Laptop", "Desktop", "Monitor", "Printer", "Router"}

var officeLocations = []string{
	"Main Office - Floor 1",
	"AnnexBuilding - IT Department",
	"Remote - Home Office",
	"Warehouse - Storage Area",
	"Data Center - Rack 5",
	"Branch Office - Floor 2",
	"Headquarters - Floor 3",
	"Remote - Co-working Space",
}

// Summary counts what a run created and skipped
type Summary struct {
	Users         int
	Categories    int
	Manufacturers int
	Locations     int
	Assets        int
	Skipped       int
}

// Seeder generates demo records
type Seeder struct {
	repos  Repositories
	cfg    config.SeedConfig
	faker  *gofakeit.Faker
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Seeder
type Option func(*Seeder)

// WithFaker sets the data generator, e.g. gofakeit.New(42) for a repeatable run
func WithFaker(f *gofakeit.Faker) Option {
	return func(s *Seeder) { s.faker = f }
}

// WithClock sets the upper bound of generated purchase dates
func WithClock(now func() time.Time) Option {
	return func(s *Seeder) { s.now = now }
}

// New creates a seeder. The faker is randomly seeded unless WithFaker is given.
func New(repos Repositories, cfg config.SeedConfig, logger *zap.Logger, opts ...Option) *Seeder {
	s := &Seeder{
		repos:  repos,
		cfg:    cfg,
		faker:  gofakeit.New(0),
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run creates the default users followed by the generated records. Records
// whose unique field is already taken are skipped; any other error stops the run.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	sum := &Summary{}

	if err := s.seedDefaultUsers(ctx, sum); err != nil {
		return sum, err
	}
	users, err := s.seedUsers(ctx, sum)
	if err != nil {
		return sum, err
	}
	categories, err := s.seedCategories(ctx, sum)
	if err != nil {
		return sum, err
	}
	manufacturers, err := s.seedManufacturers(ctx, sum)
	if err != nil {
		return sum, err
	}
	locations, err := s.seedLocations(ctx, sum)
	if err != nil {
		return sum, err
	}
	if err := s.seedAssets(ctx, sum, users, categories, manufacturers, locations); err != nil {
		return sum, err
	}

	s.logger.Info("Seeding finished",
		zap.Int("users", sum.Users),
		zap.Int("categories", sum.Categories),
		zap.Int("manufacturers", sum.Manufacturers),
		zap.Int("locations", sum.Locations),
		zap.Int("assets", sum.Assets),
		zap.Int("skipped", sum.Skipped),
	)
	return sum, nil
}

func (s *Seeder) seedDefaultUsers(ctx context.Context, sum *Summary) error {
	for _, du := range DefaultUsers {
		if _, err := s.createUser(ctx, sum, du.Name, du.Email, du.Role); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context, sum *Summary) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, s.cfg.Users)
	for range s.cfg.Users {
		id, err := s.createUser(ctx, sum, s.faker.Name(), strings.ToLower(s.faker.Email()), identity.RoleInventoryUser)
		if err != nil {
			return nil, err
		}
		if id != uuid.Nil {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// createUser returns uuid.Nil when the email is taken
func (s *Seeder) createUser(ctx context.Context, sum *Summary, name, email string, role identity.Role) (uuid.UUID, error) {
	taken, err := s.repos.Users.ExistsByEmail(ctx, email, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to check user email: %w", err)
	}
	if taken {
		sum.Skipped++
		return uuid.Nil, nil
	}

	user, err := identity.NewUser(name, email, role, s.cfg.DefaultPassword)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to build user %s: %w", email, err)
	}
	if err := s.repos.Users.Create(ctx, user); err != nil {
		if skipped(sum, err) {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}
	sum.Users++
	return user.ID, nil
}

func (s *Seeder) seedCategories(ctx context.Context, sum *Summary) ([]uuid.UUID, error) {
	return seedNamed(ctx, sum, pick(s.faker, deviceTypes, s.cfg.Categories), s.repos.Categories.ExistsByName,
		func(name string) (uuid.UUID, error) {
			description := s.faker.Sentence(6)
			category, err := inventory.NewCategory(name, &description)
			if err != nil {
				return uuid.Nil, err
			}
			return category.ID, s.repos.Categories.Create(ctx, category)
		}, &sum.Categories)
}

func (s *Seeder) seedManufacturers(ctx context.Context, sum *Summary) ([]uuid.UUID, error) {
	names := make([]string, 0, s.cfg.Manufacturers)
	for range s.cfg.Manufacturers {
		names = append(names, s.faker.Company())
	}
	return seedNamed(ctx, sum, names, s.repos.Manufacturers.ExistsByName,
		func(name string) (uuid.UUID, error) {
			url := s.faker.URL()
			supportURL := strings.TrimSuffix(url, "/") + "/support"
			phone := s.faker.Phone()
			email := strings.ToLower(s.faker.Email())
			m, err := inventory.NewManufacturer(name, inventory.ManufacturerContact{
				URL:          &url,
				SupportURL:   &supportURL,
				SupportPhone: &phone,
				SupportEmail: &email,
			})
			if err != nil {
				return uuid.Nil, err
			}
			return m.ID, s.repos.Manufacturers.Create(ctx, m)
		}, &sum.Manufacturers)
}

func (s *Seeder) seedLocations(ctx context.Context, sum *Summary) ([]uuid.UUID, error) {
	return seedNamed(ctx, sum, pick(s.faker, officeLocations, s.cfg.Locations), s.repos.Locations.ExistsByName,
		func(name string) (uuid.UUID, error) {
			address := s.faker.Address().Address
			location, err := inventory.NewLocation(name, &address)
			if err != nil {
				return uuid.Nil, err
			}
			return location.ID, s.repos.Locations.Create(ctx, location)
		}, &sum.Locations)
}

func (s *Seeder) seedAssets(ctx context.Context, sum *Summary, users, categories, manufacturers, locations []uuid.UUID) error {
	statuses := inventory.AssetStatuses()
	from := time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := s.now().UTC()

	for range s.cfg.Assets {
		attrs := inventory.AssetAttributes{
			AssetTag:       fmt.Sprintf("AST-%05d", s.faker.Number(10000, 99999)),
			Name:           s.faker.Word() + " " + s.faker.RandomString(assetKinds),
			SerialNumber:   ptr("SN-" + strings.ToUpper(s.faker.Lexify("??")) + s.faker.Numerify("#####")),
			ModelName:      ptr("Model-" + strings.ToUpper(s.faker.Lexify("??")) + s.faker.Numerify("##")),
			PurchaseDate:   ptr(s.faker.DateRange(from, to)),
			PurchasePrice:  ptr(decimal.NewFromFloat(s.faker.Float64Range(100, 5000)).Round(inventory.PriceScale)),
			Status:         statuses[s.faker.Number(0, len(statuses)-1)],
			CategoryID:     randomID(s.faker, categories),
			ManufacturerID: randomID(s.faker, manufacturers),
			LocationID:     randomID(s.faker, locations),
		}
		if s.faker.Bool() {
			attrs.Notes = ptr(s.faker.Paragraph(1, 3, 10, " "))
		}
		if s.faker.Number(1, 100) <= 70 {
			attrs.AssignedToUserID = randomID(s.faker, users)
		}

		taken, err := s.assetTaken(ctx, attrs)
		if err != nil {
			return err
		}
		if taken {
			sum.Skipped++
			continue
		}

		asset, err := inventory.NewAsset(attrs)
		if err != nil {
			return fmt.Errorf("failed to build asset %s: %w", attrs.AssetTag, err)
		}
		if err := s.repos.Assets.Create(ctx, asset); err != nil {
			if skipped(sum, err) {
				continue
			}
			return err
		}
		sum.Assets++
	}
	return nil
}

func (s *Seeder) assetTaken(ctx context.Context, attrs inventory.AssetAttributes) (bool, error) {
	taken, err := s.repos.Assets.ExistsByAssetTag(ctx, attrs.AssetTag, nil)
	if err != nil || taken {
		return taken, err
	}
	return s.repos.Assets.ExistsBySerialNumber(ctx, *attrs.SerialNumber, nil)
}

// seedNamed creates one record per name, skipping names already in use
func seedNamed(
	ctx context.Context,
	sum *Summary,
	names []string,
	exists func(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error),
	create func(name string) (uuid.UUID, error),
	created *int,
) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		taken, err := exists(ctx, name, nil)
		if err != nil {
			return nil, err
		}
		if taken {
			sum.Skipped++
			continue
		}
		id, err := create(name)
		if err != nil {
			if skipped(sum, err) {
				continue
			}
			return nil, err
		}
		*created++
		ids = append(ids, id)
	}
	return ids, nil
}

// skipped counts a unique collision raised by the database
func skipped(sum *Summary, err error) bool {
	if errors.Is(err, shared.ErrAlreadyExists) {
		sum.Skipped++
		return true
	}
	return false
}

// pick returns n distinct entries of list in random order, all of them when n exceeds its length.
func pick(f *gofakeit.Faker, list []string, n int) []string {
	shuffled := append([]string(nil), list...)
	f.ShuffleStrings(shuffled)
	return shuffled[:min(n, len(shuffled))]
}

func randomID(f *gofakeit.Faker, ids []uuid.UUID) *uuid.UUID {
	if len(ids) == 0 {
		return nil
	}
	id := ids[f.Number(0, len(ids)-1)]
	return &id
}

func ptr[T any](v T) *T {
	return &v
}

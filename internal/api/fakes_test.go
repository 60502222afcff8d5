package api

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"picnicapi/server/internal/models"
	"picnicapi/server/internal/services"
)

var errDatabaseDown = errors.New("database is down")

// fakeWeather знает города из known; err имитирует сбой API
type fakeWeather struct {
	known  map[string]float64
	err    error
	checks int
	temps  int
}

func (f *fakeWeather) CheckCityExists(_ context.Context, name string) (bool, error) {
	f.checks++
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.known[models.CapitalizeName(name)]
	return ok, nil
}

func (f *fakeWeather) GetTemperature(_ context.Context, name string) (float64, error) {
	f.temps++
	if f.err != nil {
		return 0, f.err
	}
	temp, ok := f.known[models.CapitalizeName(name)]
	if !ok {
		return 0, services.ErrUnexpectedStatus
	}
	return temp, nil
}

type fakeStore struct {
	mu            sync.Mutex
	cities        []models.City
	users         []models.User
	picnics       []models.Picnic
	registrations []models.PicnicRegistration
	err           error
}

type fakeCities struct{ *fakeStore }
type fakeUsers struct{ *fakeStore }
type fakePicnics struct{ *fakeStore }
type fakeRegistrations struct{ *fakeStore }

func (f fakeCities) GetByName(_ context.Context, name string) (*models.City, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.cities {
		if c.Name == name {
			c := c
			return &c, nil
		}
	}
	return nil, services.ErrNotFound
}

func (f fakeCities) GetByID(_ context.Context, id uint) (*models.City, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.cities {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, services.ErrNotFound
}

func (f fakeCities) GetOrCreate(ctx context.Context, city *models.City) (*models.City, bool, error) {
	if existing, err := f.GetByName(ctx, city.Name); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, services.ErrNotFound) {
		return nil, false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	city.ID = uint(len(f.cities) + 1)
	f.cities = append(f.cities, *city)
	return city, true, nil
}

func (f fakeCities) List(_ context.Context, name string) ([]models.City, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []models.City{}
	for _, c := range f.cities {
		if name == "" || c.Name == name {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f fakeUsers) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	user.ID = uint(len(f.users) + 1)
	f.users = append(f.users, *user)
	return nil
}

func (f fakeUsers) GetByID(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, services.ErrNotFound
}

func (f fakeUsers) List(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.User{}, f.users...), nil
}

func (f fakePicnics) Create(_ context.Context, picnic *models.Picnic) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	picnic.ID = uint(len(f.picnics) + 1)
	picnic.Time = picnic.Time.UTC()
	f.picnics = append(f.picnics, *picnic)
	return nil
}

func (f fakePicnics) List(_ context.Context, filter services.PicnicFilter) ([]models.Picnic, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Picnic{}
	for _, p := range f.picnics {
		if filter.Time != nil && !p.Time.Equal(*filter.Time) {
			continue
		}
		if !filter.IncludePast && p.Time.Before(filter.Now) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f fakeRegistrations) Create(_ context.Context, r *models.PicnicRegistration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	r.ID = uint(len(f.registrations) + 1)
	f.registrations = append(f.registrations, *r)
	return nil
}

func (f fakeRegistrations) ListUsersByPicnic(_ context.Context, picnicID uint) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	regs := []models.PicnicRegistration{}
	for _, r := range f.registrations {
		if r.PicnicID == picnicID {
			regs = append(regs, r)
		}
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i].ID < regs[j].ID })

	out := []models.User{}
	for _, r := range regs {
		for _, u := range f.users {
			if u.ID == r.UserID {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

var fixedNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

// testDeps собирает Dependencies поверх одного fakeStore
func testDeps(weather *fakeWeather, store *fakeStore) Dependencies {
	return Dependencies{
		Validator:     weather,
		Cities:        fakeCities{store},
		Users:         fakeUsers{store},
		Picnics:       fakePicnics{store},
		Registrations: fakeRegistrations{store},
		Now:           func() time.Time { return fixedNow },
		Log:           zerolog.Nop(),
	}
}

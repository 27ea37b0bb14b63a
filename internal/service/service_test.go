package service_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"tenderhub/internal/service"
	"tenderhub/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeStore — хранилище в памяти, реализует service.Storage. Транзакция
// моделируется мьютексом: fn под InTenderTx/InBidTx выполняется
// эксклюзивно, как строка под FOR UPDATE.
type fakeStore struct {
	mu             sync.Mutex
	employees      map[string]models.Employee
	users          map[string]models.User
	organizations  map[uuid.UUID]models.Organization
	tenders        map[uuid.UUID]models.Tender
	tenderOrder    []uuid.UUID
	tenderVersions map[uuid.UUID][]models.TenderVersion
	bids           map[uuid.UUID]models.Bid
	bidOrder       []uuid.UUID
	bidVersions    map[uuid.UUID][]models.BidVersion
	reviews        []models.BidReview
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		employees:      map[string]models.Employee{},
		users:          map[string]models.User{},
		organizations:  map[uuid.UUID]models.Organization{},
		tenders:        map[uuid.UUID]models.Tender{},
		tenderVersions: map[uuid.UUID][]models.TenderVersion{},
		bids:           map[uuid.UUID]models.Bid{},
		bidVersions:    map[uuid.UUID][]models.BidVersion{},
	}
}

func (f *fakeStore) addEmployee(username string) {
	f.employees[username] = models.Employee{ID: uuid.New(), Username: username}
}

func (f *fakeStore) addUser(username string) {
	f.users[username] = models.User{ID: uuid.New(), Username: username}
}

func (f *fakeStore) addOrganization(name string) uuid.UUID {
	id := uuid.New()
	f.organizations[id] = models.Organization{ID: id, Name: name, Type: "LLC"}
	return id
}

func (f *fakeStore) GetEmployeeByUsername(ctx context.Context, username string) (*models.Employee, error) {
	e, ok := f.employees[username]
	if !ok {
		return nil, service.ErrNotFound
	}
	return &e, nil
}

func (f *fakeStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, service.ErrNotFound
	}
	return &u, nil
}

func (f *fakeStore) GetOrganization(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	o, ok := f.organizations[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return &o, nil
}

func (f *fakeStore) CreateTender(ctx context.Context, t *models.Tender) error {
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	f.tenders[t.ID] = *t
	f.tenderOrder = append(f.tenderOrder, t.ID)
	return nil
}

func (f *fakeStore) GetTender(ctx context.Context, id uuid.UUID) (*models.Tender, error) {
	t, ok := f.tenders[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return &t, nil
}

func (f *fakeStore) GetTenders(ctx context.Context, serviceTypes []string, limit, offset int) ([]models.Tender, error) {
	out := []models.Tender{}
	for _, id := range f.tenderOrder {
		t := f.tenders[id]
		if len(serviceTypes) > 0 {
			found := false
			for _, st := range serviceTypes {
				if t.ServiceType == st {
					found = true
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, t)
	}
	return paginate(out, limit, offset), nil
}

func (f *fakeStore) GetTendersByCreator(ctx context.Context, username string, limit, offset int) ([]models.Tender, error) {
	out := []models.Tender{}
	for _, id := range f.tenderOrder {
		if t := f.tenders[id]; t.CreatorUsername == username {
			out = append(out, t)
		}
	}
	return paginate(out, limit, offset), nil
}

func (f *fakeStore) GetTenderVersions(ctx context.Context, tenderID uuid.UUID) ([]models.TenderVersion, error) {
	out := append([]models.TenderVersion{}, f.tenderVersions[tenderID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].Version > out[j].Version })
	return out, nil
}

func (f *fakeStore) InTenderTx(ctx context.Context, fn func(tx service.TenderTx) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(&fakeTenderTx{s: f})
}

type fakeTenderTx struct {
	s *fakeStore
}

func (t *fakeTenderTx) LockTender(ctx context.Context, id uuid.UUID) (*models.Tender, error) {
	tender, ok := t.s.tenders[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return &tender, nil
}

func (t *fakeTenderTx) MaxTenderVersion(ctx context.Context, id uuid.UUID) (int, error) {
	last := 0
	for _, v := range t.s.tenderVersions[id] {
		if v.Version > last {
			last = v.Version
		}
	}
	return last, nil
}

func (t *fakeTenderTx) InsertTenderVersion(ctx context.Context, v *models.TenderVersion) error {
	for _, existing := range t.s.tenderVersions[v.TenderID] {
		if existing.Version == v.Version {
			return fmt.Errorf("%w: tender_version", service.ErrConflict)
		}
	}
	v.CreatedAt = time.Now()
	t.s.tenderVersions[v.TenderID] = append(t.s.tenderVersions[v.TenderID], *v)
	return nil
}

func (t *fakeTenderTx) UpdateTenderHead(ctx context.Context, tender *models.Tender) error {
	if _, ok := t.s.tenders[tender.ID]; !ok {
		return service.ErrNotFound
	}
	tender.UpdatedAt = time.Now()
	t.s.tenders[tender.ID] = *tender
	return nil
}

func (t *fakeTenderTx) GetTenderVersion(ctx context.Context, id uuid.UUID, version int) (*models.TenderVersion, error) {
	for _, v := range t.s.tenderVersions[id] {
		if v.Version == version {
			return &v, nil
		}
	}
	return nil, service.ErrNotFound
}

func (f *fakeStore) CreateBid(ctx context.Context, b *models.Bid) error {
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.bids[b.ID] = *b
	f.bidOrder = append(f.bidOrder, b.ID)
	return nil
}

func (f *fakeStore) GetBid(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	b, ok := f.bids[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return &b, nil
}

func (f *fakeStore) GetBidsByCreator(ctx context.Context, username string, limit, offset int) ([]models.Bid, error) {
	out := []models.Bid{}
	for _, id := range f.bidOrder {
		if b := f.bids[id]; b.CreatorUsername == username {
			out = append(out, b)
		}
	}
	return paginate(out, limit, offset), nil
}

func (f *fakeStore) GetBidsForTender(ctx context.Context, tenderID uuid.UUID, limit, offset int) ([]models.Bid, error) {
	out := []models.Bid{}
	for _, id := range f.bidOrder {
		if b := f.bids[id]; b.TenderID == tenderID {
			out = append(out, b)
		}
	}
	return paginate(out, limit, offset), nil
}

func (f *fakeStore) GetBidVersions(ctx context.Context, bidID uuid.UUID) ([]models.BidVersion, error) {
	out := append([]models.BidVersion{}, f.bidVersions[bidID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].Version > out[j].Version })
	return out, nil
}

func (f *fakeStore) InBidTx(ctx context.Context, fn func(tx service.BidTx) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(&fakeBidTx{s: f})
}

type fakeBidTx struct {
	s *fakeStore
}

func (t *fakeBidTx) LockBid(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	bid, ok := t.s.bids[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return &bid, nil
}

func (t *fakeBidTx) MaxBidVersion(ctx context.Context, id uuid.UUID) (int, error) {
	last := 0
	for _, v := range t.s.bidVersions[id] {
		if v.Version > last {
			last = v.Version
		}
	}
	return last, nil
}

func (t *fakeBidTx) InsertBidVersion(ctx context.Context, v *models.BidVersion) error {
	for _, existing := range t.s.bidVersions[v.BidID] {
		if existing.Version == v.Version {
			return fmt.Errorf("%w: bid_version", service.ErrConflict)
		}
	}
	v.CreatedAt = time.Now()
	t.s.bidVersions[v.BidID] = append(t.s.bidVersions[v.BidID], *v)
	return nil
}

func (t *fakeBidTx) UpdateBidHead(ctx context.Context, bid *models.Bid) error {
	if _, ok := t.s.bids[bid.ID]; !ok {
		return service.ErrNotFound
	}
	bid.UpdatedAt = time.Now()
	t.s.bids[bid.ID] = *bid
	return nil
}

func (t *fakeBidTx) GetBidVersion(ctx context.Context, id uuid.UUID, version int) (*models.BidVersion, error) {
	for _, v := range t.s.bidVersions[id] {
		if v.Version == version {
			return &v, nil
		}
	}
	return nil, service.ErrNotFound
}

func (f *fakeStore) CreateBidReview(ctx context.Context, r *models.BidReview) error {
	r.ID = uuid.New()
	r.CreatedAt = time.Now()
	f.reviews = append(f.reviews, *r)
	return nil
}

func (f *fakeStore) GetBidReviews(ctx context.Context, tenderID uuid.UUID, authorUsername string, organizationID uuid.UUID) ([]models.BidReview, error) {
	out := []models.BidReview{}
	for _, r := range f.reviews {
		b, ok := f.bids[r.BidID]
		if !ok {
			continue
		}
		if b.TenderID == tenderID && b.OrganizationID == organizationID && r.AuthorUsername == authorUsername {
			out = append(out, r)
		}
	}
	return out, nil
}

func paginate[T any](in []T, limit, offset int) []T {
	if offset >= len(in) {
		return []T{}
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}

func str(s string) *string { return &s }

func newTenderFixture(t *testing.T) (*service.Service, *fakeStore, *models.Tender) {
	t.Helper()
	store := newFakeStore()
	store.addEmployee("user1")
	orgID := store.addOrganization("Org1")

	svc := service.New(store)
	tender, err := svc.CreateTender(context.Background(), service.CreateTenderInput{
		Name:            "Tender A",
		Description:     "Description A",
		ServiceType:     models.ServiceTypeConstruction,
		OrganizationID:  orgID,
		CreatorUsername: "user1",
	})
	require.NoError(t, err)
	return svc, store, tender
}

func TestCreateTenderNoVersionRow(t *testing.T) {
	svc, _, tender := newTenderFixture(t)

	require.Equal(t, models.TenderStatusCreated, tender.Status)

	versions, err := svc.ListTenderVersions(context.Background(), tender.ID)
	require.NoError(t, err)
	require.Empty(t, versions)
}

func TestCreateTenderUnresolvedReferences(t *testing.T) {
	store := newFakeStore()
	store.addEmployee("user1")
	orgID := store.addOrganization("Org1")
	svc := service.New(store)

	_, err := svc.CreateTender(context.Background(), service.CreateTenderInput{
		Name:            "Tender",
		Description:     "Desc",
		OrganizationID:  uuid.New(),
		CreatorUsername: "user1",
	})
	require.ErrorIs(t, err, service.ErrValidation)

	_, err = svc.CreateTender(context.Background(), service.CreateTenderInput{
		Name:            "Tender",
		Description:     "Desc",
		OrganizationID:  orgID,
		CreatorUsername: "ghost",
	})
	require.ErrorIs(t, err, service.ErrValidation)

	// Ничего не должно быть создано частично
	tenders, err := svc.ListTenders(context.Background(), nil, 50, 0)
	require.NoError(t, err)
	require.Empty(t, tenders)
}

func TestUpdateTenderVersionsSequential(t *testing.T) {
	svc, _, tender := newTenderFixture(t)
	ctx := context.Background()

	const n = 5
	for i := 1; i <= n; i++ {
		_, err := svc.UpdateTender(ctx, tender.ID, service.TenderPatch{
			Name: str(fmt.Sprintf("Tender rev %d", i)),
		})
		require.NoError(t, err)
	}

	versions, err := svc.ListTenderVersions(ctx, tender.ID)
	require.NoError(t, err)
	require.Len(t, versions, n)
	// Номера 1..N без пропусков, в списке — по убыванию
	for i, v := range versions {
		require.Equal(t, n-i, v.Version)
	}
}

func TestUpdateTenderSnapshotsPreEditState(t *testing.T) {
	svc, _, tender := newTenderFixture(t)
	ctx := context.Background()

	updated, err := svc.UpdateTender(ctx, tender.ID, service.TenderPatch{Name: str("B")})
	require.NoError(t, err)
	require.Equal(t, "B", updated.Name)

	versions, err := svc.ListTenderVersions(ctx, tender.ID)
	require.NoError(t, err)
	require.Len(t, versions, 1)
	// Снимок хранит состояние до правки
	require.Equal(t, 1, versions[0].Version)
	require.Equal(t, "Tender A", versions[0].Name)
	require.Equal(t, "Description A", versions[0].Description)
}

func TestUpdateTenderPartialPatch(t *testing.T) {
	svc, _, tender := newTenderFixture(t)
	ctx := context.Background()

	updated, err := svc.UpdateTender(ctx, tender.ID, service.TenderPatch{Name: str("Renamed")})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
	// Непереданные поля сохраняют значения
	require.Equal(t, "Description A", updated.Description)
	require.Equal(t, models.ServiceTypeConstruction, updated.ServiceType)
	require.Equal(t, models.TenderStatusCreated, updated.Status)
}

func TestUpdateTenderNotFound(t *testing.T) {
	svc, _, _ := newTenderFixture(t)

	_, err := svc.UpdateTender(context.Background(), uuid.New(), service.TenderPatch{Name: str("X")})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateTenderInvalidStatus(t *testing.T) {
	svc, _, tender := newTenderFixture(t)

	_, err := svc.UpdateTender(context.Background(), tender.ID, service.TenderPatch{Status: str("Reopened")})
	require.ErrorIs(t, err, service.ErrValidation)
}

func TestRollbackTenderScenario(t *testing.T) {
	svc, _, tender := newTenderFixture(t)
	ctx := context.Background()

	_, err := svc.UpdateTender(ctx, tender.ID, service.TenderPatch{Name: str("B")})
	require.NoError(t, err)
	_, err = svc.UpdateTender(ctx, tender.ID, service.TenderPatch{Name: str("C")})
	require.NoError(t, err)

	rolled, err := svc.RollbackTender(ctx, tender.ID, 1)
	require.NoError(t, err)
	require.Equal(t, "Tender A", rolled.Name)

	versions, err := svc.ListTenderVersions(ctx, tender.ID)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	require.Equal(t, 2, versions[0].Version)
	require.Equal(t, "B", versions[0].Name)
	require.Equal(t, 1, versions[1].Version)
	require.Equal(t, "Tender A", versions[1].Name)
}

func TestRollbackTenderIdempotent(t *testing.T) {
	svc, _, tender := newTenderFixture(t)
	ctx := context.Background()

	_, err := svc.UpdateTender(ctx, tender.ID, service.TenderPatch{Name: str("B"), Description: str("Desc B")})
	require.NoError(t, err)

	first, err := svc.RollbackTender(ctx, tender.ID, 1)
	require.NoError(t, err)
	second, err := svc.RollbackTender(ctx, tender.ID, 1)
	require.NoError(t, err)

	require.Equal(t, first.Name, second.Name)
	require.Equal(t, first.Description, second.Description)

	// Журнал версий не растет от откатов
	versions, err := svc.ListTenderVersions(ctx, tender.ID)
	require.NoError(t, err)
	require.Len(t, versions, 1)
}

func TestRollbackTenderUnknownVersion(t *testing.T) {
	svc, _, tender := newTenderFixture(t)
	ctx := context.Background()

	_, err := svc.UpdateTender(ctx, tender.ID, service.TenderPatch{Name: str("B")})
	require.NoError(t, err)

	_, err = svc.RollbackTender(ctx, tender.ID, 999)
	require.ErrorIs(t, err, service.ErrNotFound)

	// head не изменился
	head, err := svc.GetTender(ctx, tender.ID)
	require.NoError(t, err)
	require.Equal(t, "B", head.Name)
}

func TestUpdateThenRollbackRoundTrip(t *testing.T) {
	svc, _, tender := newTenderFixture(t)
	ctx := context.Background()

	updated, err := svc.UpdateTender(ctx, tender.ID, service.TenderPatch{
		Name:        str("Changed"),
		Description: str("Changed desc"),
	})
	require.NoError(t, err)

	versions, err := svc.ListTenderVersions(ctx, tender.ID)
	require.NoError(t, err)
	require.Len(t, versions, 1)

	rolled, err := svc.RollbackTender(ctx, tender.ID, versions[0].Version)
	require.NoError(t, err)
	require.Equal(t, "Tender A", rolled.Name)
	require.Equal(t, "Description A", rolled.Description)
	require.False(t, rolled.UpdatedAt.Before(updated.UpdatedAt))
}

func TestConcurrentTenderUpdates(t *testing.T) {
	svc, _, tender := newTenderFixture(t)
	ctx := context.Background()

	const workers = 8
	errCh := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.UpdateTender(ctx, tender.ID, service.TenderPatch{
				Name: str(fmt.Sprintf("rev from worker %d", i)),
			})
			errCh <- err
		}(i)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	versions, err := svc.ListTenderVersions(ctx, tender.ID)
	require.NoError(t, err)
	require.Len(t, versions, workers)
	seen := map[int]bool{}
	for _, v := range versions {
		require.False(t, seen[v.Version], "duplicate version %d", v.Version)
		require.GreaterOrEqual(t, v.Version, 1)
		require.LessOrEqual(t, v.Version, workers)
		seen[v.Version] = true
	}
}

func TestListTendersByServiceType(t *testing.T) {
	store := newFakeStore()
	store.addEmployee("user1")
	orgID := store.addOrganization("Org1")
	svc := service.New(store)
	ctx := context.Background()

	for _, st := range []string{models.ServiceTypeConstruction, models.ServiceTypeDelivery, models.ServiceTypeConstruction} {
		_, err := svc.CreateTender(ctx, service.CreateTenderInput{
			Name:            "Tender " + st,
			Description:     "Desc",
			ServiceType:     st,
			OrganizationID:  orgID,
			CreatorUsername: "user1",
		})
		require.NoError(t, err)
	}

	tenders, err := svc.ListTenders(ctx, []string{models.ServiceTypeConstruction}, 50, 0)
	require.NoError(t, err)
	require.Len(t, tenders, 2)
	for _, tn := range tenders {
		require.Equal(t, models.ServiceTypeConstruction, tn.ServiceType)
	}
}

func newBidFixture(t *testing.T) (*service.Service, *fakeStore, *models.Bid) {
	t.Helper()
	svc, store, tender := newTenderFixture(t)
	store.addUser("bidder1")

	bid, err := svc.CreateBid(context.Background(), service.CreateBidInput{
		Name:            "Bid A",
		Description:     "Bid description A",
		TenderID:        tender.ID,
		OrganizationID:  tender.OrganizationID,
		CreatorUsername: "bidder1",
	})
	require.NoError(t, err)
	return svc, store, bid
}

func TestCreateBidDefaultsAndNamespace(t *testing.T) {
	svc, store, tender := newTenderFixture(t)
	ctx := context.Background()
	store.addUser("bidder1")

	bid, err := svc.CreateBid(ctx, service.CreateBidInput{
		Name:            "Bid A",
		Description:     "Desc",
		TenderID:        tender.ID,
		OrganizationID:  tender.OrganizationID,
		CreatorUsername: "bidder1",
	})
	require.NoError(t, err)
	require.Equal(t, models.BidStatusSubmitted, bid.Status)

	// user1 есть среди сотрудников, но не среди пользователей:
	// пространства имен раздельные
	_, err = svc.CreateBid(ctx, service.CreateBidInput{
		Name:            "Bid B",
		Description:     "Desc",
		TenderID:        tender.ID,
		OrganizationID:  tender.OrganizationID,
		CreatorUsername: "user1",
	})
	require.ErrorIs(t, err, service.ErrValidation)
}

func TestUpdateBidByCreator(t *testing.T) {
	svc, _, bid := newBidFixture(t)
	ctx := context.Background()

	updated, err := svc.UpdateBid(ctx, bid.ID, service.BidPatch{Name: str("Bid B")}, "bidder1")
	require.NoError(t, err)
	require.Equal(t, "Bid B", updated.Name)

	versions, err := svc.ListBidVersions(ctx, bid.ID)
	require.NoError(t, err)
	require.Len(t, versions, 1)
	require.Equal(t, "Bid A", versions[0].Name)
}

func TestUpdateBidPermissionDenied(t *testing.T) {
	svc, store, bid := newBidFixture(t)
	ctx := context.Background()
	store.addUser("intruder")

	_, err := svc.UpdateBid(ctx, bid.ID, service.BidPatch{Name: str("Hijacked")}, "intruder")
	require.ErrorIs(t, err, service.ErrPermissionDenied)

	// head и журнал версий не тронуты
	head, err := svc.GetBid(ctx, bid.ID)
	require.NoError(t, err)
	require.Equal(t, "Bid A", head.Name)

	versions, err := svc.ListBidVersions(ctx, bid.ID)
	require.NoError(t, err)
	require.Empty(t, versions)
}

func TestRollbackBid(t *testing.T) {
	svc, _, bid := newBidFixture(t)
	ctx := context.Background()

	_, err := svc.UpdateBid(ctx, bid.ID, service.BidPatch{Name: str("Bid B")}, "bidder1")
	require.NoError(t, err)
	_, err = svc.UpdateBid(ctx, bid.ID, service.BidPatch{Name: str("Bid C")}, "bidder1")
	require.NoError(t, err)

	rolled, err := svc.RollbackBid(ctx, bid.ID, 2)
	require.NoError(t, err)
	require.Equal(t, "Bid B", rolled.Name)

	versions, err := svc.ListBidVersions(ctx, bid.ID)
	require.NoError(t, err)
	require.Len(t, versions, 2)

	_, err = svc.RollbackBid(ctx, bid.ID, 42)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestAddBidReview(t *testing.T) {
	svc, store, bid := newBidFixture(t)
	ctx := context.Background()
	store.addUser("reviewer1")

	review, err := svc.AddBidReview(ctx, bid.ID, "reviewer1", "Solid proposal")
	require.NoError(t, err)
	require.Equal(t, "reviewer1", review.AuthorUsername)

	_, err = svc.AddBidReview(ctx, uuid.New(), "reviewer1", "Lost")
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.AddBidReview(ctx, bid.ID, "nobody", "Anonymous")
	require.ErrorIs(t, err, service.ErrValidation)
}

func TestListBidReviewsThreeWayFilter(t *testing.T) {
	svc, store, tender := newTenderFixture(t)
	ctx := context.Background()
	store.addUser("bidder1")
	store.addUser("u2")
	store.addUser("u3")
	otherOrg := store.addOrganization("Org2")

	bid1, err := svc.CreateBid(ctx, service.CreateBidInput{
		Name: "Bid 1", Description: "D", TenderID: tender.ID,
		OrganizationID: tender.OrganizationID, CreatorUsername: "bidder1",
	})
	require.NoError(t, err)
	bid2, err := svc.CreateBid(ctx, service.CreateBidInput{
		Name: "Bid 2", Description: "D", TenderID: tender.ID,
		OrganizationID: otherOrg, CreatorUsername: "bidder1",
	})
	require.NoError(t, err)

	_, err = svc.AddBidReview(ctx, bid1.ID, "u2", "matches all filters")
	require.NoError(t, err)
	_, err = svc.AddBidReview(ctx, bid1.ID, "u3", "wrong author")
	require.NoError(t, err)
	_, err = svc.AddBidReview(ctx, bid2.ID, "u2", "wrong organization")
	require.NoError(t, err)

	reviews, err := svc.ListBidReviews(ctx, tender.ID, "u2", tender.OrganizationID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.Equal(t, "matches all filters", reviews[0].Content)
	require.Equal(t, "u2", reviews[0].AuthorUsername)
}

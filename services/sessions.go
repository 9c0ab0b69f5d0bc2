package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"igv/api/models"
	"igv/api/models/constants/message"
	"igv/api/models/dtos"
	"igv/api/models/igv"
	"igv/api/models/indexes"
	esRepo "igv/api/repositories/elasticsearch"
	"igv/api/services/genomes"
	"igv/api/services/resolver"
	"igv/api/services/serialization"
	"igv/api/services/widgets"

	"github.com/Jeffail/gabs"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

var (
	ErrBrowserNotFound   = errors.New("browser not found")
	ErrMissingGenome     = errors.New("either a genome id or genome parameters are required")
	ErrInvalidEvent      = errors.New("invalid event")
	ErrUnknownEvent      = errors.New("unknown event")
	ErrInvalidParameters = errors.New("invalid parameters") // undecodable parameter bag
)

// browser parameters handled separately from the browser flags
var browserStructureParams = []string{"genome", "tracks", "roi", "search"}

type (
	BrowserSession struct {
		Id        uuid.UUID
		GenomeId  string
		Browser   *igv.Browser
		Outbox    []igv.Message
		LastDump  interface{}
		CreatedAt time.Time
		UpdatedAt time.Time

		modelIds map[string]bool
		mux      sync.Mutex
	}

	QueuedMessage struct {
		BrowserId string
		Message   igv.Message
		Err       error
		WaitGroup *sync.WaitGroup
	}

	SessionService struct {
		Initialized         bool
		MessageChan         chan *QueuedMessage
		SessionMap          map[string]*BrowserSession
		SessionMapMux       sync.RWMutex
		// model id -> id of the browser session owning the model
		ModelOwners         map[string]string
		ModelOwnersMux      sync.RWMutex
		Registry            *widgets.Registry
		Serializer          *serialization.Serializer
		ElasticsearchClient *elasticsearch.Client
		Config              *models.Config
	}
)

func NewSessionService(es *elasticsearch.Client, cfg *models.Config) *SessionService {
	policy, ok := serialization.ParsePolicy(cfg.Api.SerializationPolicy)
	if !ok {
		log.Warnf("unknown serialization policy '%s', using strict", cfg.Api.SerializationPolicy)
	}
	serializer := serialization.NewSerializerWithPolicy(policy)

	queueSize := cfg.Api.MessageQueueSize
	if queueSize < 0 {
		queueSize = 0
	}

	ss := &SessionService{
		Initialized:         false,
		MessageChan:         make(chan *QueuedMessage, queueSize),
		SessionMap:          map[string]*BrowserSession{},
		SessionMapMux:       sync.RWMutex{},
		ModelOwners:         map[string]string{},
		Registry:            widgets.NewRegistry(serializer),
		Serializer:          serializer,
		ElasticsearchClient: es,
		Config:              cfg,
	}

	ss.Init()

	return ss
}

func (s *SessionService) Init() {
	// safeguard to prevent multiple initilizations
	if !s.Initialized {
		// spin up a go routine acting as the single writer
		// of every session's outbox, keeping messages in the
		// order they were queued
		go func() {
			for queued := range s.MessageChan {
				session, err := s.GetSession(queued.BrowserId)
				if err != nil {
					queued.Err = err
				} else {
					session.mux.Lock()
					session.Outbox = append(session.Outbox, queued.Message)
					session.UpdatedAt = time.Now()
					session.mux.Unlock()
				}
				queued.WaitGroup.Done()
			}
		}()

		s.Initialized = true
		fmt.Println("Session Service Initialized ..")
	}
}

// CreateBrowser builds a browser session from the request: the genome
// (public id or parameters), the browser flags, the search service, and
// the tracks and regions of interest, each run through the track resolver.
func (s *SessionService) CreateBrowser(ctx context.Context, req dtos.CreateBrowserRequestDto) (*BrowserSession, []string, error) {
	var (
		genome   *igv.ReferenceGenome
		warnings []string
		err      error
	)
	switch {
	case req.GenomeId != "":
		genome, warnings, err = genomes.NewPublicGenome(req.GenomeId)
	case len(req.Genome) > 0:
		genome, warnings, err = genomes.NewGenome(req.Genome)
	default:
		err = ErrMissingGenome
	}
	if err != nil {
		return nil, nil, err
	}

	browser := igv.NewBrowser(genome)

	unused, decodeErr := resolver.DecodeParams(req.Options, browser, browserStructureParams...)
	if decodeErr != nil {
		return nil, nil, fmt.Errorf("%w: browser options: %v", ErrInvalidParameters, decodeErr)
	}
	if len(unused) > 0 {
		warnings = append(warnings, fmt.Sprintf("browser options ignored: %s", strings.Join(unused, ", ")))
	}

	if len(req.Search) > 0 {
		search := igv.NewSearchService()
		unused, decodeErr := resolver.DecodeParams(req.Search, search)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: search service: %v", ErrInvalidParameters, decodeErr)
		}
		if len(unused) > 0 {
			warnings = append(warnings, fmt.Sprintf("search service parameters ignored: %s", strings.Join(unused, ", ")))
		}
		browser.Search = search
	}

	for i, params := range req.Tracks {
		track, trackWarnings := resolver.Resolve(params)
		warnings = append(warnings, prefixed(fmt.Sprintf("tracks[%d]", i), trackWarnings)...)
		browser.AddTrack(track)
	}
	for i, params := range req.Roi {
		roi, roiWarnings := resolver.Resolve(params)
		warnings = append(warnings, prefixed(fmt.Sprintf("roi[%d]", i), roiWarnings)...)
		browser.AddRoi(roi)
	}

	now := time.Now()
	session := &BrowserSession{
		Id:        uuid.New(),
		GenomeId:  genome.Id,
		Browser:   browser,
		Outbox:    []igv.Message{},
		CreatedAt: now,
		UpdatedAt: now,
		modelIds:  map[string]bool{},
	}
	s.syncRegistry(session)

	s.SessionMapMux.Lock()
	s.SessionMap[session.Id.String()] = session
	s.SessionMapMux.Unlock()

	s.persist(ctx, session)

	if warnings == nil {
		warnings = []string{}
	}
	return session, warnings, nil
}

func (s *SessionService) GetSession(browserId string) (*BrowserSession, error) {
	s.SessionMapMux.RLock()
	defer s.SessionMapMux.RUnlock()

	if session, ok := s.SessionMap[browserId]; ok {
		return session, nil
	}
	return nil, ErrBrowserNotFound
}

func (s *SessionService) ListSessionIds() []string {
	s.SessionMapMux.RLock()
	defer s.SessionMapMux.RUnlock()

	ids := make([]string, 0, len(s.SessionMap))
	for id := range s.SessionMap {
		ids = append(ids, id)
	}
	return ids
}

// DeleteSession discards the session and unregisters every model of its
// tree.
func (s *SessionService) DeleteSession(ctx context.Context, browserId string) error {
	s.SessionMapMux.Lock()
	session, ok := s.SessionMap[browserId]
	if ok {
		delete(s.SessionMap, browserId)
	}
	s.SessionMapMux.Unlock()

	if !ok {
		return ErrBrowserNotFound
	}
	s.release(session)

	if s.persistenceEnabled() {
		if err := esRepo.DeleteBrowserSessionById(ctx, s.Config, s.ElasticsearchClient, browserId); err != nil && !errors.Is(err, esRepo.ErrDocumentNotFound) {
			log.Errorf("failed to delete browser session %s : %v", browserId, err)
		}
	}
	return nil
}

// EvictIdleSessions discards the in-memory sessions not updated since
// cutoff and returns how many were discarded.
func (s *SessionService) EvictIdleSessions(cutoff time.Time) int {
	evicted := []*BrowserSession{}

	s.SessionMapMux.Lock()
	for id, session := range s.SessionMap {
		session.mux.Lock()
		idle := session.UpdatedAt.Before(cutoff)
		session.mux.Unlock()

		if idle {
			delete(s.SessionMap, id)
			evicted = append(evicted, session)
		}
	}
	s.SessionMapMux.Unlock()

	for _, session := range evicted {
		s.release(session)
	}
	return len(evicted)
}

func (s *SessionService) AddTrack(ctx context.Context, browserId string, params map[string]interface{}) (igv.Track, []string, error) {
	session, err := s.GetSession(browserId)
	if err != nil {
		return nil, nil, err
	}

	track, warnings := resolver.Resolve(params)
	s.mutate(ctx, session, func(b *igv.Browser) error {
		b.AddTrack(track)
		return nil
	})
	return track, warnings, nil
}

// RemoveTrack removes the track with the given model id (or reference
// token) from the browser.
func (s *SessionService) RemoveTrack(ctx context.Context, browserId string, modelId string) error {
	session, err := s.GetSession(browserId)
	if err != nil {
		return err
	}
	if id, ok := serialization.ParseToken(modelId); ok {
		modelId = id
	}

	return s.mutate(ctx, session, func(b *igv.Browser) error {
		track, found := b.FindTrack(modelId)
		if !found {
			return widgets.ErrModelNotFound
		}
		b.RemoveTrack(track)
		return nil
	})
}

func (s *SessionService) AddRoi(ctx context.Context, browserId string, params map[string]interface{}) (igv.Track, []string, error) {
	session, err := s.GetSession(browserId)
	if err != nil {
		return nil, nil, err
	}

	roi, warnings := resolver.Resolve(params)
	s.mutate(ctx, session, func(b *igv.Browser) error {
		b.AddRoi(roi)
		return nil
	})
	return roi, warnings, nil
}

func (s *SessionService) RemoveAllRoi(ctx context.Context, browserId string) error {
	session, err := s.GetSession(browserId)
	if err != nil {
		return err
	}

	return s.mutate(ctx, session, func(b *igv.Browser) error {
		b.RemoveAllRoi()
		return nil
	})
}

// Search queues a search command for the view.
func (s *SessionService) Search(browserId string, symbol string) error {
	return s.enqueue(browserId, igv.SearchMessage(symbol))
}

// DumpJson asks the view to send its current state back, see HandleEvent.
func (s *SessionService) DumpJson(browserId string) error {
	return s.enqueue(browserId, igv.DumpJsonMessage())
}

// DrainMessages returns the pending command messages, oldest first, and
// empties the outbox.
func (s *SessionService) DrainMessages(browserId string) ([]igv.Message, error) {
	session, err := s.GetSession(browserId)
	if err != nil {
		return nil, err
	}

	session.mux.Lock()
	defer session.mux.Unlock()

	messages := session.Outbox
	session.Outbox = []igv.Message{}
	return messages, nil
}

// HandleEvent processes a raw event sent by the view. Only `return_json`
// is understood: its payload becomes the session's last dump.
func (s *SessionService) HandleEvent(ctx context.Context, browserId string, body []byte) error {
	session, err := s.GetSession(browserId)
	if err != nil {
		return err
	}

	container, parseErr := gabs.ParseJSON(body)
	if parseErr != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEvent, parseErr)
	}

	eventName, _ := container.Path("event").Data().(string)
	switch eventName {
	case string(message.RETURN_JSON):
		dump := container.Path("json").Data()
		receivedAt := time.Now()

		session.mux.Lock()
		session.LastDump = dump
		session.UpdatedAt = receivedAt
		doc := s.snapshot(session)
		session.mux.Unlock()

		if s.persistenceEnabled() {
			group, groupCtx := errgroup.WithContext(ctx)
			group.Go(func() error {
				return esRepo.SaveBrowserDump(groupCtx, s.Config, s.ElasticsearchClient, indexes.BrowserDump{
					BrowserId:  browserId,
					Json:       dump,
					ReceivedAt: receivedAt,
				})
			})
			group.Go(func() error {
				return esRepo.SaveBrowserSession(groupCtx, s.Config, s.ElasticsearchClient, doc)
			})
			if err := group.Wait(); err != nil {
				log.Errorf("failed to persist dump of browser %s : %v", browserId, err)
			}
		}
		return nil
	}

	return fmt.Errorf("%w: '%s'", ErrUnknownEvent, eventName)
}

// LastDump returns the last json returned by the view. Falls back to the
// most recent persisted dump when none was received by this process.
func (s *SessionService) LastDump(ctx context.Context, browserId string) (interface{}, error) {
	session, err := s.GetSession(browserId)
	if err != nil {
		return nil, err
	}

	session.mux.Lock()
	dump := session.LastDump
	session.mux.Unlock()

	if dump == nil && s.persistenceEnabled() {
		dumps, err := esRepo.GetBrowserDumpsByBrowserId(ctx, s.Config, s.ElasticsearchClient, browserId, 1)
		if err != nil {
			log.Errorf("failed to fetch dumps of browser %s : %v", browserId, err)
		} else if len(dumps) > 0 {
			dump = dumps[0].Json
		}
	}
	return dump, nil
}

// BrowserState is the serialized state of the browser model itself.
func (s *SessionService) BrowserState(browserId string) (map[string]interface{}, error) {
	session, err := s.GetSession(browserId)
	if err != nil {
		return nil, err
	}

	session.mux.Lock()
	defer session.mux.Unlock()

	return s.Serializer.State(session.Browser), nil
}

// EmbedState returns the widget-state document of the whole tree of the
// browser. Sessions this process no longer holds are read back from their
// persisted snapshot.
func (s *SessionService) EmbedState(ctx context.Context, browserId string) (interface{}, error) {
	session, err := s.GetSession(browserId)
	if err == nil {
		session.mux.Lock()
		defer session.mux.Unlock()

		return s.Registry.EmbedState(session.Browser), nil
	}

	if !s.persistenceEnabled() {
		return nil, err
	}
	doc, getErr := esRepo.GetBrowserSessionById(ctx, s.Config, s.ElasticsearchClient, browserId)
	if getErr != nil {
		if !errors.Is(getErr, esRepo.ErrDocumentNotFound) {
			log.Errorf("failed to fetch browser session %s : %v", browserId, getErr)
		}
		return nil, ErrBrowserNotFound
	}
	return doc.State, nil
}

// ModelState serializes the model with the given id (or reference token)
// while holding the lock of the session owning it.
func (s *SessionService) ModelState(modelId string) (widgets.ModelState, error) {
	if id, ok := serialization.ParseToken(modelId); ok {
		modelId = id
	}

	s.ModelOwnersMux.RLock()
	browserId, owned := s.ModelOwners[modelId]
	s.ModelOwnersMux.RUnlock()
	if !owned {
		return widgets.ModelState{}, widgets.ErrModelNotFound
	}

	session, err := s.GetSession(browserId)
	if err != nil {
		return widgets.ModelState{}, widgets.ErrModelNotFound
	}

	session.mux.Lock()
	defer session.mux.Unlock()

	// the model may have been removed since the owner lookup
	if !session.modelIds[modelId] {
		return widgets.ModelState{}, widgets.ErrModelNotFound
	}
	entity, err := s.Registry.Get(modelId)
	if err != nil {
		return widgets.ModelState{}, err
	}
	return s.Registry.ModelState(entity), nil
}

// -- internal use only --
func (s *SessionService) enqueue(browserId string, msg igv.Message) error {
	if _, err := s.GetSession(browserId); err != nil {
		return err
	}

	var wg sync.WaitGroup
	wg.Add(1)
	queued := &QueuedMessage{
		BrowserId: browserId,
		Message:   msg,
		WaitGroup: &wg,
	}
	s.MessageChan <- queued
	wg.Wait()

	return queued.Err
}

func (s *SessionService) mutate(ctx context.Context, session *BrowserSession, change func(b *igv.Browser) error) error {
	session.mux.Lock()
	if err := change(session.Browser); err != nil {
		session.mux.Unlock()
		return err
	}
	session.UpdatedAt = time.Now()
	s.syncRegistry(session)
	session.mux.Unlock()

	s.persist(ctx, session)
	return nil
}

// syncRegistry registers the models reachable from the browser and
// unregisters the ones no longer reachable. Callers hold session.mux
// (or own the session exclusively).
func (s *SessionService) syncRegistry(session *BrowserSession) {
	reachable := map[string]bool{}
	entities := session.Browser.Entities()
	for _, e := range entities {
		reachable[e.GetModelId()] = true
	}

	stale := []string{}
	for id := range session.modelIds {
		if !reachable[id] {
			stale = append(stale, id)
		}
	}

	s.Registry.Unregister(stale...)
	s.Registry.Register(entities...)
	session.modelIds = reachable

	browserId := session.Id.String()
	s.ModelOwnersMux.Lock()
	for _, id := range stale {
		delete(s.ModelOwners, id)
	}
	for id := range reachable {
		s.ModelOwners[id] = browserId
	}
	s.ModelOwnersMux.Unlock()
}

func (s *SessionService) release(session *BrowserSession) {
	session.mux.Lock()
	defer session.mux.Unlock()

	ids := make([]string, 0, len(session.modelIds))
	for id := range session.modelIds {
		ids = append(ids, id)
	}
	s.Registry.Unregister(ids...)
	session.modelIds = map[string]bool{}

	s.ModelOwnersMux.Lock()
	for _, id := range ids {
		delete(s.ModelOwners, id)
	}
	s.ModelOwnersMux.Unlock()
}

func (s *SessionService) persistenceEnabled() bool {
	return s.ElasticsearchClient != nil && s.Config.Elasticsearch.Enabled
}

func (s *SessionService) persist(ctx context.Context, session *BrowserSession) {
	if !s.persistenceEnabled() {
		return
	}

	session.mux.Lock()
	doc := s.snapshot(session)
	session.mux.Unlock()

	if err := esRepo.SaveBrowserSession(ctx, s.Config, s.ElasticsearchClient, doc); err != nil {
		log.Errorf("failed to persist browser session %s : %v", session.Id, err)
	}
}

// snapshot requires session.mux
func (s *SessionService) snapshot(session *BrowserSession) indexes.BrowserSession {
	embedded := s.Registry.EmbedState(session.Browser)
	return indexes.BrowserSession{
		Id:       session.Id.String(),
		GenomeId: session.GenomeId,
		State: map[string]interface{}{
			"version_major": embedded.VersionMajor,
			"version_minor": embedded.VersionMinor,
			"state":         embedded.State,
		},
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
}

func prefixed(prefix string, warnings []string) []string {
	out := make([]string, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, fmt.Sprintf("%s: %s", prefix, w))
	}
	return out
}

// Package firestore contains the concrete implementation of the persistence
// layer using Cloud Firestore as the document store.
package firestore

import (
	"context"
	"log/slog"

	"kasir/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection names, shared by every repository in this package. Products,
// cart items and transactions live in subcollections under their business
// document; users are a root collection keyed by the identity provider's
// subject id.
const (
	collectionBusiness     = "businessInfo"
	collectionProduct      = "product"
	collectionCartItem     = "transactionItem"
	collectionTransaction  = "transaction"
	collectionUser         = "user"
	fieldTransactionID     = "transactionId"
	fieldName              = "name"
	fieldPrefixes          = "prefixes"
	fieldCreatedAt         = "createdAt"
	fieldUpdatedAt         = "updatedAt"
	fieldCount             = "count"
)

// ClientParams holds dependencies for the Firestore client, injected by Fx.
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewClient initializes the Firestore client through the Firebase app. When a
// credentials path is configured it is used explicitly; otherwise application
// default credentials apply (the emulator included).
func NewClient(params ClientParams) (*firestore.Client, error) {
	cfg := params.Config.Firestore
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firestore.projectId must be provided")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	params.Logger.Info("Firestore client initialized", slog.String("project_id", cfg.ProjectID))

	return client, nil
}

// session bundles the client with an optional transaction. Repositories read
// and write through the session so the same code path serves both direct
// operations and operations bound to a store transaction.
type session struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

func (s session) get(ctx context.Context, ref *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	if s.tx != nil {
		return s.tx.Get(ref)
	}

	return ref.Get(ctx)
}

func (s session) set(ctx context.Context, ref *firestore.DocumentRef, data any) error {
	if s.tx != nil {
		return s.tx.Set(ref, data)
	}

	_, err := ref.Set(ctx, data)

	return err
}

func (s session) update(ctx context.Context, ref *firestore.DocumentRef, updates []firestore.Update) error {
	if s.tx != nil {
		return s.tx.Update(ref, updates)
	}

	_, err := ref.Update(ctx, updates)

	return err
}

func (s session) delete(ctx context.Context, ref *firestore.DocumentRef) error {
	if s.tx != nil {
		return s.tx.Delete(ref)
	}

	_, err := ref.Delete(ctx)

	return err
}

func (s session) documents(ctx context.Context, query firestore.Query) *firestore.DocumentIterator {
	if s.tx != nil {
		return s.tx.Documents(query)
	}

	return query.Documents(ctx)
}

func (s session) businessDoc(businessID string) *firestore.DocumentRef {
	return s.client.Collection(collectionBusiness).Doc(businessID)
}

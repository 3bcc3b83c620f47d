package firestore

import (
	"context"

	"kasir/internal/domain/entity"
	"kasir/internal/domain/repository"
	"kasir/internal/infra/persistence/firestore/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// transactionRepository implements repository.TransactionRepository on
// Firestore. The collection is append-only.
type transactionRepository struct {
	session
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(client *firestore.Client) repository.TransactionRepository {
	return &transactionRepository{session{client: client}}
}

func (repo *transactionRepository) collection(businessID string) *firestore.CollectionRef {
	return repo.businessDoc(businessID).Collection(collectionTransaction)
}

// FindByID retrieves a single transaction under the given business.
func (repo *transactionRepository) FindByID(ctx context.Context, businessID, transactionID string) (*entity.Transaction, error) {
	snap, err := repo.get(ctx, repo.collection(businessID).Doc(transactionID))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to get transaction document")
	}

	var doc model.TransactionDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode transaction document")
	}

	return doc.ToTransactionDomain(), nil
}

// Exists reports whether a transaction document with the given id is present.
func (repo *transactionRepository) Exists(ctx context.Context, businessID, transactionID string) (bool, error) {
	snap, err := repo.get(ctx, repo.collection(businessID).Doc(transactionID))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to probe transaction document")
	}

	return snap.Exists(), nil
}

// Create persists a new transaction aggregate keyed by its id.
func (repo *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	ref := repo.collection(transaction.BusinessID).Doc(transaction.ID)
	if err := repo.set(ctx, ref, model.FromTransactionDomain(transaction)); err != nil {
		return errors.Wrap(err, "failed to create transaction document")
	}

	return nil
}

// ListByCreatedDesc returns all transactions under the business, newest first.
func (repo *transactionRepository) ListByCreatedDesc(ctx context.Context, businessID string) ([]*entity.Transaction, error) {
	query := repo.collection(businessID).OrderBy(fieldCreatedAt, firestore.Desc)

	iter := repo.documents(ctx, query)
	defer iter.Stop()

	var transactions []*entity.Transaction
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate transaction documents")
		}

		var doc model.TransactionDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode transaction document")
		}
		transactions = append(transactions, doc.ToTransactionDomain())
	}

	return transactions, nil
}

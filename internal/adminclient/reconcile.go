package adminclient

import "fmt"

// Result is the uniform outcome of a mutating operation. Either OK is
// set with the affected record, or Err carries the classified failure.
type Result[T any] struct {
	OK   bool
	Data T
	Err  *Error
}

func success[T any](data T) Result[T] {
	return Result[T]{OK: true, Data: data}
}

func failure[T any](err error) Result[T] {
	return Result[T]{Err: AsError(err)}
}

// Reconciler turns network outcomes into collection updates. The
// collection is only touched after the server confirms a change; any
// failure leaves it exactly as it was.
type Reconciler[T any] struct {
	collection *Collection[T]

	// OnUnauthorized fires when the server rejects the credential, so
	// the caller can drop the token and force re-authentication.
	OnUnauthorized func()
}

func NewReconciler[T any](collection *Collection[T]) *Reconciler[T] {
	return &Reconciler[T]{collection: collection}
}

// Commit runs the session's commit and classifies the outcome.
func (r *Reconciler[T]) Commit(session *EditSession[T]) Result[T] {
	record, err := session.Commit()
	if err != nil {
		return r.fail(err)
	}
	return success(record)
}

// Delete removes a record server-side, then from the collection. A
// NotFound answer means the local copy was stale, so the collection is
// reloaded from the server instead.
func (r *Reconciler[T]) Delete(id int64) Result[T] {
	record, _ := r.collection.Find(id)

	if err := Remove(r.collection.client, r.collection.resource, id); err != nil {
		apiErr := AsError(err)
		if apiErr.Kind == ErrorNotFound {
			if loadErr := r.collection.Load(); loadErr != nil {
				apiErr.Message = fmt.Sprintf("%s (reload failed: %s)", apiErr.Message, AsError(loadErr).Message)
			}
		}
		return r.fail(apiErr)
	}

	r.collection.ApplyDelete(id)
	return success(record)
}

// Reload refetches the collection and wraps the outcome.
func (r *Reconciler[T]) Reload() Result[[]T] {
	if err := r.collection.Load(); err != nil {
		return failure[[]T](err)
	}
	return success(r.collection.Records())
}

func (r *Reconciler[T]) fail(err error) Result[T] {
	apiErr := AsError(err)
	if apiErr.Kind == ErrorUnauthorized && r.OnUnauthorized != nil {
		r.OnUnauthorized()
	}
	return Result[T]{Err: apiErr}
}

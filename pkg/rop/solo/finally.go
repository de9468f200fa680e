package solo

import "github.com/ib-77/bailout/pkg/rop"

// Finally collapses input into a single value. An empty input is handed to onFailure
// with the zero failure value.
func Finally[V, E, Out any](input rop.WithError[V, E],
	onSuccess func(r V) Out,
	onFailure func(err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onFailure(input.Err())
}

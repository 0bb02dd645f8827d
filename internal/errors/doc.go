// Package errors classifies failures of the stat engine and carries them
// across the gRPC boundary.
//
// Every layer returns *Error values built with the constructors here:
//
//	return nil, errors.NotFoundf("character %s not found", id)
//
// Wrapping adds context without losing the classification:
//
//	if err != nil {
//	    return nil, errors.Wrapf(err, "failed to get character %s", id)
//	}
//
// Input checks gather every bad field before failing:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("action_id", input.ActionID, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// Handlers hand results to ToGRPCError; clients recover the code and
// metadata with FromGRPCError.
package errors

// Package modelv1 holds the model-gateway gRPC contract. The Go stubs are
// produced by protoc at build time.
package modelv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative modelcall.proto

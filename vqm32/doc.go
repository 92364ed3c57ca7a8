// Package vqm32 implements the VQM composite transform in single precision.
//
// It mirrors package vqm64 type for type and function for function, see its
// documentation for the VQM-group derivation. The two packages never mix
// implicitly, package cast converts between them.
//
//	localToWorld := localToObject.Mul(objectToWorld)
//	worldPoint := localToWorld.MulPoint3(localPoint)
package vqm32

// Package linkage reads the numeric control and property ids of the linked
// libcamera runtime from its C headers.
//
// The runtime declares ids as enumerators of a C enum:
//
//	enum libcamera_control_id {
//	    LIBCAMERA_CONTROL_ID_AE_ENABLE = 1,
//	    ...
//	};
//
// and optionally its version as LIBCAMERA_VERSION_MAJOR/MINOR/PATCH
// defines. A Table keeps the enumerators with their prefix stripped, in
// declaration order; internal/gen turns it into the native/*id packages the
// generated catalogues reference.
package linkage

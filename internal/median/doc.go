// Package median computes coordinate-wise medians of point sets.
//
// Used by the cluster centroid update. For an odd count n the median is the
// sorted element at index n/2; for an even count it is the mean of the sorted
// elements at n/2-1 and n/2.
package median

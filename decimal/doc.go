// Package decimal rescales integer amounts between decimal precisions.
//
// An amount carrying `from` fractional digits is converted to one carrying
// `to` digits by multiplying or dividing by 10^|to-from|. Scaling up is
// overflow checked; scaling down truncates toward zero and never rounds.
// Narrowing to a smaller word always performs an explicit fit check before
// the downcast.
package decimal

/*
Package ratelimiter implements a middleware that rate limits the flow of
value across IBC channels. Transfers are tracked per path, where a path is
the combination of a port, a channel and a denom, and each path carries a
list of named quotas. A quota caps how much value may leave and how much
may enter over a fixed window of time, netting sends against receives.
Transfers that would push a window past its cap are refused, and transfers
that later fail or time out are credited back.
*/
package ratelimiter

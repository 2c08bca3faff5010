package rdx

// insertionThreshold: fallbackSort insertion sorts inputs at or below this
// size and merge sorts the rest. 18 is an experimentally chosen threshold.
const insertionThreshold = 18

// fallbackSort sorts src stably into the buffer selected by destination
// (0 = src, 1 = tmp) and returns that buffer. src and tmp must have equal
// length. Small inputs are insertion sorted directly into the destination;
// larger inputs are split in half, sorted into the other buffer, and merged
// back with ties taking the left run.
func fallbackSort[T any, K Key](src, tmp []T, key func(T) K, destination int) []T {
	n := len(src)
	d := src
	if destination != 0 {
		d = tmp
	}
	if n <= insertionThreshold {
		if n > 0 {
			d[0] = src[0]
		}
		for i := 1; i < n; i++ {
			t := src[i]
			j := i
			for ; j > 0 && key(t) < key(d[j-1]); j-- {
				d[j] = d[j-1]
			}
			d[j] = t
		}
		return d
	}
	a, b := n/2, n-n/2
	fallbackSort(src[:a], tmp[:a], key, destination^1)
	fallbackSort(src[a:], tmp[a:], key, destination^1)
	// The halves now live in the buffer opposite the destination.
	l, r := tmp[:a], tmp[a:]
	if destination != 0 {
		l, r = src[:a], src[a:]
	}
	i, j, k := 0, 0, 0
	for {
		if key(r[j]) < key(l[i]) {
			d[k] = r[j]
			k++
			j++
			if j == b {
				break
			}
		} else {
			d[k] = l[i]
			k++
			i++
			if i == a {
				break
			}
		}
	}
	if i == a {
		for ; j < b; j++ {
			d[k] = r[j]
			k++
		}
	} else {
		for ; i < a; i++ {
			d[k] = l[i]
			k++
		}
	}
	return d
}

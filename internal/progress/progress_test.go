package progress

import "testing"

func TestChannelCallbackForwards(t *testing.T) {
	ch := make(chan Update, 4)
	cb := ChannelCallback(ch, 2)

	cb(0.5)

	select {
	case u := <-ch:
		if u.ConvolverIndex != 2 || u.Value != 0.5 {
			t.Errorf("unexpected update %+v", u)
		}
	default:
		t.Fatal("expected an update on the channel")
	}
}

func TestChannelCallbackNeverBlocks(t *testing.T) {
	ch := make(chan Update, 1)
	cb := ChannelCallback(ch, 0)

	// Second send must be dropped, not deadlock.
	cb(0.1)
	cb(0.2)

	u := <-ch
	if u.Value != 0.1 {
		t.Errorf("expected first update to survive, got %+v", u)
	}
	select {
	case u := <-ch:
		t.Errorf("expected full channel to drop update, got %+v", u)
	default:
	}
}

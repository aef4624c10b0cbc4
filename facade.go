// Copyright 2024 Mmate Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package msgevents

import (
	"sync"

	"github.com/glimte/msgevents-go/contracts"
	"github.com/glimte/msgevents-go/messaging"
)

// Version of the message events library, announced on the info channel
const Version = "0.3.3"

// Validation error messages published on the error channel
const (
	ErrorInvalidArguments = contracts.ErrorInvalidArguments
	ErrorInvalidHandler   = contracts.ErrorInvalidHandler
	ErrorInternalID       = contracts.ErrorInternalID
	ErrorInvalidIDLength  = contracts.ErrorInvalidIDLength
)

var (
	defaultInstance = newDefaultInstance()
	announce        sync.Once
)

func newDefaultInstance() *messaging.Instance {
	return messaging.New(messaging.WithDefaultFormats())
}

// Default returns the process-wide instance behind On and Off
func Default() *messaging.Instance {
	return defaultInstance
}

// On installs a handler on the default instance. The first handler installed on
// the info channel receives a contracts.LoadEvent right away.
func On(id any, handler any) {
	defaultInstance.On(id, handler)

	if id == contracts.ChannelInfo && defaultInstance.Handles(contracts.ChannelInfo) {
		announce.Do(func() {
			defaultInstance.Invoke(contracts.ChannelInfo, contracts.NewLoadEvent(Version))
		})
	}
}

// Off resets channels of the default instance, or all of them when no id is given
func Off(ids ...string) {
	defaultInstance.Off(ids...)
}

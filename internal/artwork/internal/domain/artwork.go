// Copyright 2024 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

type ArtworkStatus uint8

func (s ArtworkStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	ArtworkStatusOffShelf ArtworkStatus = 1
	ArtworkStatusOnShelf  ArtworkStatus = 2
)

type Artwork struct {
	ID          int64
	SN          string
	Title       string
	Description string
	Image       string
	// 单位为分, 999表示9.99元
	Price    int64
	SellerID int64
	Status   ArtworkStatus
	Ctime    int64
	Utime    int64
}
